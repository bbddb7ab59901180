package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/usecase"

	"github.com/pkg/errors"
)

// salesRepService implements the SalesRepUsecase interface.
type salesRepService struct {
	customerRepo repository.CustomerRepository
	salesRepRepo repository.SalesRepRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewSalesRepService is the constructor for salesRepService.
func NewSalesRepService(
	customerRepo repository.CustomerRepository,
	salesRepRepo repository.SalesRepRepository,
	logger *slog.Logger,
) usecase.SalesRepUsecase {
	return &salesRepService{
		customerRepo: customerRepo,
		salesRepRepo: salesRepRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a run-scoped logger if available, otherwise falls back to the service's logger.
func (srv *salesRepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCustomer appends an existing customer to the rep's portfolio.
func (srv *salesRepService) AddCustomer(ctx context.Context, repID, customerID int) error {
	rep, err := findSalesRep(ctx, srv.salesRepRepo, repID)
	if err != nil {
		return errors.Wrap(err, "failed to add customer")
	}

	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		return errors.Wrap(err, "failed to add customer")
	}

	rep.AddCustomer(customer.ID)
	srv.log(ctx).Debug("Added customer to portfolio", slog.Int("rep_id", rep.ID), slog.Int("customer_id", customer.ID))

	return nil
}

// FindCustomer resolves a customer that is in the rep's portfolio.
func (srv *salesRepService) FindCustomer(ctx context.Context, repID, customerID int) (*entity.Customer, error) {
	rep, err := findSalesRep(ctx, srv.salesRepRepo, repID)
	if err != nil {
		return nil, err
	}

	return srv.findInPortfolio(ctx, rep, customerID)
}

func (srv *salesRepService) findInPortfolio(ctx context.Context, rep *entity.SalesRepresentative, customerID int) (*entity.Customer, error) {
	if !rep.Holds(customerID) {
		return nil, domainerrors.ErrCustomerNotInPortfolio.WithDetails(
			fmt.Sprintf("customer %d is not assigned to sales rep %d", customerID, rep.ID))
	}

	return findCustomer(ctx, srv.customerRepo, customerID)
}

// portfolio resolves every portfolio entry in assignment order, duplicates included.
func (srv *salesRepService) portfolio(ctx context.Context, repID int) ([]*entity.Customer, error) {
	rep, err := findSalesRep(ctx, srv.salesRepRepo, repID)
	if err != nil {
		return nil, err
	}

	ids := rep.Portfolio()
	customers := make([]*entity.Customer, 0, len(ids))
	for _, id := range ids {
		customer, err := findCustomer(ctx, srv.customerRepo, id)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// ListCustomers returns the customers assigned to the rep.
func (srv *salesRepService) ListCustomers(ctx context.Context, repID int) ([]*entity.Customer, error) {
	customers, err := srv.portfolio(ctx, repID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list portfolio")
	}

	return customers, nil
}

// RecordCall records a call against a portfolio customer.
func (srv *salesRepService) RecordCall(ctx context.Context, repID int, input usecase.RecordCallInput) (*usecase.RecordOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to record call")
	}

	out, err := srv.record(ctx, repID, input.CustomerID, func(at time.Time) (entity.Interaction, error) {
		return entity.NewCall(input.Content, input.Duration, at)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record call")
	}

	return out, nil
}

// RecordEmail records an email against a portfolio customer.
func (srv *salesRepService) RecordEmail(ctx context.Context, repID int, input usecase.RecordEmailInput) (*usecase.RecordOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to record email")
	}

	out, err := srv.record(ctx, repID, input.CustomerID, func(at time.Time) (entity.Interaction, error) {
		return entity.NewEmail(input.Content, input.Subject, at), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record email")
	}

	return out, nil
}

// RecordMeeting records a meeting against a portfolio customer.
func (srv *salesRepService) RecordMeeting(ctx context.Context, repID int, input usecase.RecordMeetingInput) (*usecase.RecordOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to record meeting")
	}

	out, err := srv.record(ctx, repID, input.CustomerID, func(at time.Time) (entity.Interaction, error) {
		return entity.NewMeeting(input.Content, input.Location, input.Duration, at)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record meeting")
	}

	return out, nil
}

// record resolves the customer, appends the interaction and credits VIP loyalty points.
// Nothing is mutated unless the customer resolves and the interaction is valid.
func (srv *salesRepService) record(
	ctx context.Context,
	repID, customerID int,
	build func(at time.Time) (entity.Interaction, error),
) (*usecase.RecordOutput, error) {
	customer, err := srv.FindCustomer(ctx, repID, customerID)
	if err != nil {
		srv.log(ctx).Warn("Customer lookup failed", slog.Int("rep_id", repID), slog.Int("customer_id", customerID))

		return nil, err
	}

	interaction, err := build(srv.now())
	if err != nil {
		return nil, err
	}

	customer.AppendInteraction(interaction)

	out := &usecase.RecordOutput{
		Customer:    customer,
		Interaction: interaction,
	}

	if customer.IsLoyaltyEligible() {
		points := interaction.LoyaltyPoints()
		balance, err := customer.AddLoyaltyPoints(points)
		if err != nil {
			return nil, errors.Wrap(err, "failed to credit loyalty points")
		}
		out.LoyaltyPointsAwarded = points
		out.LoyaltyBalance = balance
	}

	srv.log(ctx).Info("Recorded interaction",
		slog.Int("rep_id", repID),
		slog.Int("customer_id", customer.ID),
		slog.String("kind", interaction.Kind().String()),
		slog.Float64("loyalty_awarded", out.LoyaltyPointsAwarded),
	)

	return out, nil
}

// PerformCustomerActions runs the kind-specific action of every portfolio customer.
func (srv *salesRepService) PerformCustomerActions(ctx context.Context, repID int) ([]entity.TypeAction, error) {
	customers, err := srv.portfolio(ctx, repID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to perform customer actions")
	}

	actions := make([]entity.TypeAction, 0, len(customers))
	for _, customer := range customers {
		actions = append(actions, customer.PerformTypeAction())
	}

	return actions, nil
}

// InteractionTimeReport lists every portfolio customer's total interaction time.
func (srv *salesRepService) InteractionTimeReport(ctx context.Context, repID int) ([]usecase.InteractionTimeEntry, error) {
	customers, err := srv.portfolio(ctx, repID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build interaction time report")
	}

	entries := make([]usecase.InteractionTimeEntry, 0, len(customers))
	for _, customer := range customers {
		entries = append(entries, usecase.InteractionTimeEntry{
			CustomerID:   customer.ID,
			Name:         customer.Name,
			Kind:         customer.Kind,
			BaseMinutes:  customer.BaseInteractionTime(),
			Multiplier:   customer.Multiplier(),
			TotalMinutes: customer.TotalInteractionTime(),
		})
	}

	return entries, nil
}

// ViewCustomerInteractions returns a portfolio customer's history in recording order.
func (srv *salesRepService) ViewCustomerInteractions(ctx context.Context, repID, customerID int) (*usecase.CustomerInteractions, error) {
	customer, err := srv.FindCustomer(ctx, repID, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to view customer interactions")
	}

	return &usecase.CustomerInteractions{
		Customer:     customer,
		Interactions: customer.History(),
	}, nil
}
