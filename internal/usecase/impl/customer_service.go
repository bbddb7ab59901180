package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCustomer returns a customer by ID.
func (srv *customerService) GetCustomer(ctx context.Context, customerID int) (*entity.Customer, error) {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

// TotalInteractionTime returns the customer's multiplied interaction time in minutes.
func (srv *customerService) TotalInteractionTime(ctx context.Context, customerID int) (int, error) {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute interaction time")
	}

	return customer.TotalInteractionTime(), nil
}

// PerformTypeAction returns the customer's kind-specific follow-up.
func (srv *customerService) PerformTypeAction(ctx context.Context, customerID int) (*entity.TypeAction, error) {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to perform customer action")
	}

	action := customer.PerformTypeAction()

	return &action, nil
}

// AddLoyaltyPoints credits a VIP customer.
func (srv *customerService) AddLoyaltyPoints(ctx context.Context, customerID int, amount float64) (float64, error) {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to add loyalty points")
	}

	balance, err := customer.AddLoyaltyPoints(amount)
	if err != nil {
		srv.log(ctx).Warn("Rejected loyalty points", slog.Int("customer_id", customerID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to add loyalty points")
	}

	srv.log(ctx).Info("Added loyalty points",
		slog.Int("customer_id", customerID),
		slog.Float64("amount", amount),
		slog.Float64("balance", balance),
	)

	return balance, nil
}

// RenewContract replaces a corporate customer's annual contract value.
func (srv *customerService) RenewContract(ctx context.Context, customerID int, newValue float64) (*entity.ContractRenewal, error) {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to renew contract")
	}

	renewal, err := customer.RenewContract(newValue)
	if err != nil {
		srv.log(ctx).Warn("Rejected contract renewal", slog.Int("customer_id", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to renew contract")
	}

	srv.log(ctx).Info("Renewed contract",
		slog.Int("customer_id", customerID),
		slog.Float64("old_value", renewal.OldValue),
		slog.Float64("new_value", renewal.NewValue),
	)

	return &renewal, nil
}
