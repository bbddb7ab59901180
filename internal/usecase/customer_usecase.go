package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// CustomerUsecase exposes the kind-specific operations of a single customer.
type CustomerUsecase interface {
	GetCustomer(ctx context.Context, customerID int) (*entity.Customer, error)
	TotalInteractionTime(ctx context.Context, customerID int) (int, error)
	PerformTypeAction(ctx context.Context, customerID int) (*entity.TypeAction, error)

	// AddLoyaltyPoints credits a VIP customer and returns the new balance.
	AddLoyaltyPoints(ctx context.Context, customerID int, amount float64) (float64, error)

	// RenewContract replaces a corporate customer's annual contract value.
	RenewContract(ctx context.Context, customerID int, newValue float64) (*entity.ContractRenewal, error)
}
