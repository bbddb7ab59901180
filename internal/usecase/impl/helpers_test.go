package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/infra/persistence/memory"
	"crm/internal/usecase"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// crmFixtures wires every service to one in-memory registry.
type crmFixtures struct {
	registry  usecase.RegistryUsecase
	salesReps usecase.SalesRepUsecase
	customers usecase.CustomerUsecase
}

func createTestCRM(t *testing.T) crmFixtures {
	t.Helper()

	store := memory.NewStore()
	customerRepo := memory.NewCustomerRepository(store)
	salesRepRepo := memory.NewSalesRepRepository(store)
	logger := newDiscardLogger()

	salesReps := NewSalesRepService(customerRepo, salesRepRepo, logger)
	salesReps.(*salesRepService).now = func() time.Time { return fixedNow }

	return crmFixtures{
		registry:  NewRegistryService(customerRepo, salesRepRepo, logger),
		salesReps: salesReps,
		customers: NewCustomerService(customerRepo, logger),
	}
}

func (fx crmFixtures) regular(t *testing.T, name string) *entity.Customer {
	t.Helper()
	c, err := fx.registry.CreateRegularCustomer(context.Background(), usecase.CreateRegularCustomerInput{
		ContactInput: usecase.ContactInput{Name: name, Email: "regular@example.com", Phone: "555-1234"},
		Segment:      "Small Business",
	})
	require.NoError(t, err)

	return c
}

func (fx crmFixtures) vip(t *testing.T, name string) *entity.Customer {
	t.Helper()
	c, err := fx.registry.CreateVIPCustomer(context.Background(), usecase.CreateVIPCustomerInput{
		ContactInput:   usecase.ContactInput{Name: name, Email: "vip@example.com", Phone: "555-5678"},
		AccountManager: "Michael Johnson",
	})
	require.NoError(t, err)

	return c
}

func (fx crmFixtures) corporate(t *testing.T, name string, employees int) *entity.Customer {
	t.Helper()
	c, err := fx.registry.CreateCorporateCustomer(context.Background(), usecase.CreateCorporateCustomerInput{
		ContactInput:        usecase.ContactInput{Name: name, Email: "corp@example.com", Phone: "555-9876"},
		CompanyName:         "MegaCorp",
		EmployeeCount:       employees,
		AnnualContractValue: 50000,
	})
	require.NoError(t, err)

	return c
}

func (fx crmFixtures) rep(t *testing.T, name string) *entity.SalesRepresentative {
	t.Helper()
	r, err := fx.registry.CreateSalesRepresentative(context.Background(), name)
	require.NoError(t, err)

	return r
}

func (fx crmFixtures) assign(t *testing.T, customer *entity.Customer, rep *entity.SalesRepresentative) {
	t.Helper()
	require.NoError(t, fx.registry.AssignCustomerToRep(context.Background(), customer.ID, rep.ID))
}
