package impl

import (
	"context"

	"crm/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)

	return args.Error(0)
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

type mockSalesRepRepository struct {
	mock.Mock
}

func (m *mockSalesRepRepository) Create(ctx context.Context, rep *entity.SalesRepresentative) error {
	args := m.Called(ctx, rep)

	return args.Error(0)
}

func (m *mockSalesRepRepository) FindByID(ctx context.Context, id int) (*entity.SalesRepresentative, error) {
	args := m.Called(ctx, id)
	rep, _ := args.Get(0).(*entity.SalesRepresentative)

	return rep, args.Error(1)
}

func (m *mockSalesRepRepository) List(ctx context.Context) ([]*entity.SalesRepresentative, error) {
	args := m.Called(ctx)
	reps, _ := args.Get(0).([]*entity.SalesRepresentative)

	return reps, args.Error(1)
}

func (m *mockSalesRepRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}
