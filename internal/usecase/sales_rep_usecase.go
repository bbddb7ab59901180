package usecase

import (
	"context"

	"crm/internal/domain/entity"
)

// RecordCallInput defines a call to record against a portfolio customer.
type RecordCallInput struct {
	CustomerID int
	Content    string
	Duration   int `validate:"gte=0"`
}

// RecordEmailInput defines an email to record against a portfolio customer.
type RecordEmailInput struct {
	CustomerID int
	Content    string
	Subject    string
}

// RecordMeetingInput defines a meeting to record against a portfolio customer.
type RecordMeetingInput struct {
	CustomerID int
	Content    string
	Location   string
	Duration   int `validate:"gte=0"`
}

// RecordOutput describes the result of a successful recording.
type RecordOutput struct {
	Customer             *entity.Customer
	Interaction          entity.Interaction
	LoyaltyPointsAwarded float64 // Zero unless the customer is a VIP.
	LoyaltyBalance       float64
}

// InteractionTimeEntry is one line of a sales rep's interaction time report.
type InteractionTimeEntry struct {
	CustomerID   int                 `json:"customer_id"`
	Name         string              `json:"name"`
	Kind         entity.CustomerKind `json:"kind"`
	BaseMinutes  int                 `json:"base_minutes"`
	Multiplier   float64             `json:"multiplier"`
	TotalMinutes int                 `json:"total_minutes"`
}

// CustomerInteractions is a customer's history in recording order.
type CustomerInteractions struct {
	Customer     *entity.Customer
	Interactions []entity.Interaction
}

// SalesRepUsecase defines the operations a sales representative performs on
// the customers in their portfolio. Every customer lookup is limited to the
// rep's portfolio.
type SalesRepUsecase interface {
	AddCustomer(ctx context.Context, repID, customerID int) error
	FindCustomer(ctx context.Context, repID, customerID int) (*entity.Customer, error)
	ListCustomers(ctx context.Context, repID int) ([]*entity.Customer, error)

	// RecordCall, RecordEmail and RecordMeeting append an interaction and,
	// for VIP customers only, credit its loyalty points once.
	RecordCall(ctx context.Context, repID int, input RecordCallInput) (*RecordOutput, error)
	RecordEmail(ctx context.Context, repID int, input RecordEmailInput) (*RecordOutput, error)
	RecordMeeting(ctx context.Context, repID int, input RecordMeetingInput) (*RecordOutput, error)

	PerformCustomerActions(ctx context.Context, repID int) ([]entity.TypeAction, error)
	InteractionTimeReport(ctx context.Context, repID int) ([]InteractionTimeEntry, error)
	ViewCustomerInteractions(ctx context.Context, repID, customerID int) (*CustomerInteractions, error)
}
