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

// registryService implements the RegistryUsecase interface.
type registryService struct {
	customerRepo repository.CustomerRepository
	salesRepRepo repository.SalesRepRepository
	logger       *slog.Logger
}

// NewRegistryService is the constructor for registryService.
func NewRegistryService(
	customerRepo repository.CustomerRepository,
	salesRepRepo repository.SalesRepRepository,
	logger *slog.Logger,
) usecase.RegistryUsecase {
	return &registryService{
		customerRepo: customerRepo,
		salesRepRepo: salesRepRepo,
		logger:       logger,
	}
}

// log returns a run-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type salesRepInput struct {
	Name string `validate:"required"`
}

func toContact(input usecase.ContactInput) entity.Contact {
	return entity.Contact{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
}

// CreateRegularCustomer creates a regular customer with the next customer ID.
func (srv *registryService) CreateRegularCustomer(ctx context.Context, input usecase.CreateRegularCustomerInput) (*entity.Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to create regular customer")
	}

	return srv.createCustomer(ctx, entity.NewRegularCustomer(toContact(input.ContactInput), input.Segment))
}

// CreateVIPCustomer creates a VIP customer with the next customer ID.
func (srv *registryService) CreateVIPCustomer(ctx context.Context, input usecase.CreateVIPCustomerInput) (*entity.Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to create VIP customer")
	}

	return srv.createCustomer(ctx, entity.NewVIPCustomer(toContact(input.ContactInput), input.AccountManager))
}

// CreateCorporateCustomer creates a corporate customer with the next customer ID.
func (srv *registryService) CreateCorporateCustomer(ctx context.Context, input usecase.CreateCorporateCustomerInput) (*entity.Customer, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.Wrap(err, "failed to create corporate customer")
	}

	customer, err := entity.NewCorporateCustomer(
		toContact(input.ContactInput),
		input.CompanyName,
		input.EmployeeCount,
		input.AnnualContractValue,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create corporate customer")
	}

	return srv.createCustomer(ctx, customer)
}

func (srv *registryService) createCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		srv.log(ctx).Error("Failed to create customer", slog.Any("error", err), slog.String("kind", customer.Kind.String()))

		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Created customer",
		slog.Int("customer_id", customer.ID),
		slog.String("kind", customer.Kind.String()),
		slog.String("name", customer.Name),
	)

	return customer, nil
}

// CreateSalesRepresentative creates a sales representative with the next sales rep ID.
func (srv *registryService) CreateSalesRepresentative(ctx context.Context, name string) (*entity.SalesRepresentative, error) {
	if err := validateInput(salesRepInput{Name: name}); err != nil {
		return nil, errors.Wrap(err, "failed to create sales representative")
	}

	rep := entity.NewSalesRepresentative(name)
	if err := srv.salesRepRepo.Create(ctx, rep); err != nil {
		srv.log(ctx).Error("Failed to create sales representative", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create sales representative")
	}

	srv.log(ctx).Info("Created sales representative", slog.Int("rep_id", rep.ID), slog.String("name", rep.Name))

	return rep, nil
}

// AssignCustomerToRep resolves both IDs before touching the portfolio.
func (srv *registryService) AssignCustomerToRep(ctx context.Context, customerID, repID int) error {
	customer, err := findCustomer(ctx, srv.customerRepo, customerID)
	if err != nil {
		srv.log(ctx).Warn("Customer or sales rep not found", slog.Int("customer_id", customerID), slog.Int("rep_id", repID))

		return errors.Wrap(err, "failed to assign customer")
	}

	rep, err := findSalesRep(ctx, srv.salesRepRepo, repID)
	if err != nil {
		srv.log(ctx).Warn("Customer or sales rep not found", slog.Int("customer_id", customerID), slog.Int("rep_id", repID))

		return errors.Wrap(err, "failed to assign customer")
	}

	rep.AddCustomer(customer.ID)

	srv.log(ctx).Info("Assigned customer to sales representative",
		slog.Int("customer_id", customer.ID),
		slog.Int("rep_id", rep.ID),
	)

	return nil
}

// ListCustomers returns every customer in creation order.
func (srv *registryService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// ListSalesReps returns every sales representative in creation order.
func (srv *registryService) ListSalesReps(ctx context.Context) ([]*entity.SalesRepresentative, error) {
	reps, err := srv.salesRepRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales representatives")
	}

	return reps, nil
}

// GetSalesRep returns a single sales representative.
func (srv *registryService) GetSalesRep(ctx context.Context, repID int) (*entity.SalesRepresentative, error) {
	rep, err := findSalesRep(ctx, srv.salesRepRepo, repID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sales representative")
	}

	return rep, nil
}

// SystemReport counts customers per kind and sums their interaction time.
func (srv *registryService) SystemReport(ctx context.Context) (*usecase.SystemReport, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build system report")
	}

	repCount, err := srv.salesRepRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build system report")
	}

	report := &usecase.SystemReport{
		TotalCustomers:  len(customers),
		CustomersByKind: make(map[entity.CustomerKind]int, len(entity.CustomerKinds)),
		TotalSalesReps:  repCount,
	}
	for _, kind := range entity.CustomerKinds {
		report.CustomersByKind[kind] = 0
	}

	for _, customer := range customers {
		report.CustomersByKind[customer.Kind]++
		report.TotalInteractionTime += customer.TotalInteractionTime()
	}

	srv.log(ctx).Debug("Built system report",
		slog.Int("customers", report.TotalCustomers),
		slog.Int("sales_reps", report.TotalSalesReps),
		slog.Int("total_interaction_time", report.TotalInteractionTime),
	)

	return report, nil
}
