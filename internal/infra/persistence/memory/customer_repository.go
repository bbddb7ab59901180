package memory

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/pkg/errors"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	store *Store
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(store *Store) repository.CustomerRepository {
	return &customerRepository{
		store: store,
	}
}

// Create stores the customer and writes the assigned ID back onto it.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to create customer")
	}
	if customer == nil {
		return errors.New("customer is nil")
	}

	if !repo.store.insertCustomer(customer) {
		return errors.Wrapf(repository.ErrAlreadyStored, "customer %d", customer.ID)
	}

	return nil
}

// FindByID retrieves a customer by its ID.
func (repo *customerRepository) FindByID(ctx context.Context, id int) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	customer, ok := repo.store.customerAt(id)
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return customer, nil
}

// List returns every customer in creation order.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return repo.store.customerSnapshot(), nil
}

// Count returns the number of customers ever created.
func (repo *customerRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return len(repo.store.customers), nil
}
