package console

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DemoParams defines the dependencies of the scripted console run.
type DemoParams struct {
	fx.In

	Registry  usecase.RegistryUsecase
	SalesReps usecase.SalesRepUsecase
	Customers usecase.CustomerUsecase
	Renderer  *Renderer
	Logger    *slog.Logger
}

// Demo replays a scripted CRM session against the registry and renders each step.
type Demo struct {
	registry  usecase.RegistryUsecase
	salesReps usecase.SalesRepUsecase
	customers usecase.CustomerUsecase
	renderer  *Renderer
	logger    *slog.Logger

	// reportOnly hides every step except the final system report.
	reportOnly bool
}

// NewDemo creates the delivery behind the demo command.
func NewDemo(params DemoParams) *Demo {
	return &Demo{
		registry:  params.Registry,
		salesReps: params.SalesReps,
		customers: params.Customers,
		renderer:  params.Renderer,
		logger:    params.Logger,
	}
}

// NewReport creates the delivery behind the report command. It runs the same
// session silently and renders only the system report.
func NewReport(params DemoParams) *Demo {
	d := NewDemo(params)
	d.reportOnly = true

	return d
}

type demoCast struct {
	regular, vip, corporate *entity.Customer
	alice, david            *entity.SalesRepresentative
}

// Serve runs the session once and returns.
func (d *Demo) Serve(ctx context.Context) error {
	ctx = deliverycontext.StartRun(ctx, d.logger)
	runID := deliverycontext.GetRunID(ctx)
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	logger.Info("Starting CRM session", slog.Bool("report_only", d.reportOnly))

	renderer := d.renderer.ForRun(runID)
	out := renderer
	if d.reportOnly {
		out = NewRenderer(io.Discard, d.renderer.format)
	}

	if err := d.play(ctx, out); err != nil {
		logger.Error("CRM session failed", slog.Any("error", err))

		return errors.Wrapf(err, "run %s", runID)
	}

	report, err := d.registry.SystemReport(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to build system report")
	}
	if err := renderer.SystemReport(report); err != nil {
		return err
	}

	logger.Info("CRM session finished",
		slog.Int("customers", report.TotalCustomers),
		slog.Int("sales_reps", report.TotalSalesReps),
	)

	return nil
}

func (d *Demo) play(ctx context.Context, out *Renderer) error {
	cast, err := d.cast(ctx)
	if err != nil {
		return err
	}

	assignments := []struct {
		customer *entity.Customer
		rep      *entity.SalesRepresentative
	}{
		{cast.regular, cast.alice},
		{cast.vip, cast.alice},
		{cast.corporate, cast.david},
	}
	for _, a := range assignments {
		if err := d.registry.AssignCustomerToRep(ctx, a.customer.ID, a.rep.ID); err != nil {
			if err := d.softFail(ctx, out, err); err != nil {
				return err
			}

			continue
		}
		if err := out.Assignment(a.customer, a.rep); err != nil {
			return err
		}
	}

	if err := d.listings(ctx, out); err != nil {
		return err
	}

	if err := d.record(ctx, out, cast); err != nil {
		return err
	}

	if err := out.Section("Customer Interactions"); err != nil {
		return err
	}
	views := []struct {
		rep      *entity.SalesRepresentative
		customer *entity.Customer
	}{
		{cast.alice, cast.regular},
		{cast.alice, cast.vip},
		{cast.david, cast.corporate},
	}
	for _, v := range views {
		history, err := d.salesReps.ViewCustomerInteractions(ctx, v.rep.ID, v.customer.ID)
		if err != nil {
			if err := d.softFail(ctx, out, err); err != nil {
				return err
			}

			continue
		}
		if err := out.CustomerInteractions(history); err != nil {
			return err
		}
	}

	if err := out.Section("Customer-Specific Actions"); err != nil {
		return err
	}
	for _, rep := range []*entity.SalesRepresentative{cast.alice, cast.david} {
		actions, err := d.salesReps.PerformCustomerActions(ctx, rep.ID)
		if err != nil {
			return errors.Wrapf(err, "failed to perform actions for rep %d", rep.ID)
		}
		if err := out.TypeActions(actions); err != nil {
			return err
		}
	}

	renewal, err := d.customers.RenewContract(ctx, cast.corporate.ID, 75000)
	if err != nil {
		return errors.Wrap(err, "failed to renew contract")
	}
	if err := out.ContractRenewal(renewal); err != nil {
		return err
	}

	if err := out.Section("Interaction Time Reports"); err != nil {
		return err
	}
	for _, rep := range []*entity.SalesRepresentative{cast.alice, cast.david} {
		entries, err := d.salesReps.InteractionTimeReport(ctx, rep.ID)
		if err != nil {
			return errors.Wrapf(err, "failed to build report for rep %d", rep.ID)
		}
		if err := out.InteractionTimeReport(rep, entries); err != nil {
			return err
		}
	}

	return nil
}

func (d *Demo) cast(ctx context.Context) (*demoCast, error) {
	var (
		cast demoCast
		err  error
	)

	cast.regular, err = d.registry.CreateRegularCustomer(ctx, usecase.CreateRegularCustomerInput{
		ContactInput: usecase.ContactInput{Name: "John Doe", Email: "john@example.com", Phone: "555-1234"},
		Segment:      "Small Business",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create regular customer")
	}

	cast.vip, err = d.registry.CreateVIPCustomer(ctx, usecase.CreateVIPCustomerInput{
		ContactInput:   usecase.ContactInput{Name: "Jane Smith", Email: "jane@example.com", Phone: "555-5678"},
		AccountManager: "Michael Johnson",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create VIP customer")
	}

	cast.corporate, err = d.registry.CreateCorporateCustomer(ctx, usecase.CreateCorporateCustomerInput{
		ContactInput:        usecase.ContactInput{Name: "Bob Anderson", Email: "bob@megacorp.com", Phone: "555-9876"},
		CompanyName:         "MegaCorp",
		EmployeeCount:       1500,
		AnnualContractValue: 50000,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create corporate customer")
	}

	if cast.alice, err = d.registry.CreateSalesRepresentative(ctx, "Alice Thompson"); err != nil {
		return nil, errors.Wrap(err, "failed to create sales representative")
	}
	if cast.david, err = d.registry.CreateSalesRepresentative(ctx, "David Wilson"); err != nil {
		return nil, errors.Wrap(err, "failed to create sales representative")
	}

	return &cast, nil
}

func (d *Demo) listings(ctx context.Context, out *Renderer) error {
	customers, err := d.registry.ListCustomers(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list customers")
	}
	if err := out.Customers(customers); err != nil {
		return err
	}

	reps, err := d.registry.ListSalesReps(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list sales reps")
	}

	return out.SalesReps(reps)
}

func (d *Demo) record(ctx context.Context, out *Renderer, cast *demoCast) error {
	steps := []func() (*usecase.RecordOutput, error){
		func() (*usecase.RecordOutput, error) {
			return d.salesReps.RecordCall(ctx, cast.alice.ID, usecase.RecordCallInput{
				CustomerID: cast.regular.ID, Content: "Discussed new product features", Duration: 15,
			})
		},
		func() (*usecase.RecordOutput, error) {
			return d.salesReps.RecordEmail(ctx, cast.alice.ID, usecase.RecordEmailInput{
				CustomerID: cast.vip.ID, Content: "Sending exclusive offer details", Subject: "VIP Exclusive Offer",
			})
		},
		func() (*usecase.RecordOutput, error) {
			return d.salesReps.RecordMeeting(ctx, cast.alice.ID, usecase.RecordMeetingInput{
				CustomerID: cast.vip.ID, Content: "Quarterly review meeting", Location: "Headquarters", Duration: 60,
			})
		},
		func() (*usecase.RecordOutput, error) {
			return d.salesReps.RecordCall(ctx, cast.david.ID, usecase.RecordCallInput{
				CustomerID: cast.corporate.ID, Content: "Technical support for recent installation", Duration: 30,
			})
		},
		func() (*usecase.RecordOutput, error) {
			return d.salesReps.RecordMeeting(ctx, cast.david.ID, usecase.RecordMeetingInput{
				CustomerID: cast.corporate.ID, Content: "Contract renewal discussion", Location: "Client's Office", Duration: 90,
			})
		},
	}

	for _, step := range steps {
		result, err := step()
		if err != nil {
			if err := d.softFail(ctx, out, err); err != nil {
				return err
			}

			continue
		}
		if err := out.Record(result); err != nil {
			return err
		}
	}

	return nil
}

// softFail renders not-found errors and lets the session continue.
// Any other error is returned unchanged.
func (d *Demo) softFail(ctx context.Context, out *Renderer, err error) error {
	if !domainerrors.IsNotFound(err) {
		return err
	}
	deliverycontext.GetLoggerOrDefault(ctx, d.logger).Warn("Lookup failed", slog.Any("error", err))

	return out.NotFound(err)
}
