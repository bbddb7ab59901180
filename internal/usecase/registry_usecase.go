// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// --- Input DTOs ---

// ContactInput holds the fields shared by every customer kind.
type ContactInput struct {
	Name  string `validate:"required"`
	Email string
	Phone string
}

// CreateRegularCustomerInput defines the data required to create a regular customer.
type CreateRegularCustomerInput struct {
	ContactInput
	Segment string
}

// CreateVIPCustomerInput defines the data required to create a VIP customer.
type CreateVIPCustomerInput struct {
	ContactInput
	AccountManager string
}

// CreateCorporateCustomerInput defines the data required to create a corporate customer.
type CreateCorporateCustomerInput struct {
	ContactInput
	CompanyName         string
	EmployeeCount       int     `validate:"gt=0"`
	AnnualContractValue float64 `validate:"gte=0"`
}

// --- Output DTOs ---

// SystemReport aggregates the whole registry.
type SystemReport struct {
	TotalCustomers       int                         `json:"total_customers"`
	CustomersByKind      map[entity.CustomerKind]int `json:"customers_by_kind"` // Every kind is present, zero when unused.
	TotalSalesReps       int                         `json:"total_sales_reps"`
	TotalInteractionTime int                         `json:"total_interaction_time"` // Sum of each customer's multiplied total, in minutes.
}

// RegistryUsecase creates customers and sales representatives, links them,
// and reports over everything it has created.
type RegistryUsecase interface {
	CreateRegularCustomer(ctx context.Context, input CreateRegularCustomerInput) (*entity.Customer, error)
	CreateVIPCustomer(ctx context.Context, input CreateVIPCustomerInput) (*entity.Customer, error)
	CreateCorporateCustomer(ctx context.Context, input CreateCorporateCustomerInput) (*entity.Customer, error)
	CreateSalesRepresentative(ctx context.Context, name string) (*entity.SalesRepresentative, error)

	// AssignCustomerToRep adds the customer to the rep's portfolio. Either ID
	// failing to resolve is a not-found error and nothing changes.
	AssignCustomerToRep(ctx context.Context, customerID, repID int) error

	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	ListSalesReps(ctx context.Context) ([]*entity.SalesRepresentative, error)
	GetSalesRep(ctx context.Context, repID int) (*entity.SalesRepresentative, error)

	SystemReport(ctx context.Context) (*SystemReport, error)
}
