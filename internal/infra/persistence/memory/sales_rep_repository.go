package memory

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"

	"github.com/pkg/errors"
)

// salesRepRepository implements the repository.SalesRepRepository interface.
type salesRepRepository struct {
	store *Store
}

// NewSalesRepRepository is the constructor for salesRepRepository.
func NewSalesRepRepository(store *Store) repository.SalesRepRepository {
	return &salesRepRepository{
		store: store,
	}
}

// Create stores the sales representative and writes the assigned ID back onto it.
func (repo *salesRepRepository) Create(ctx context.Context, rep *entity.SalesRepresentative) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to create sales representative")
	}
	if rep == nil {
		return errors.New("sales representative is nil")
	}

	if !repo.store.insertSalesRep(rep) {
		return errors.Wrapf(repository.ErrAlreadyStored, "sales representative %d", rep.ID)
	}

	return nil
}

// FindByID retrieves a sales representative by its ID.
func (repo *salesRepRepository) FindByID(ctx context.Context, id int) (*entity.SalesRepresentative, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to find sales representative by ID")
	}

	rep, ok := repo.store.salesRepAt(id)
	if !ok {
		return nil, repository.ErrSalesRepNotFound
	}

	return rep, nil
}

// List returns every sales representative in creation order.
func (repo *salesRepRepository) List(ctx context.Context) ([]*entity.SalesRepresentative, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list sales representatives")
	}

	return repo.store.salesRepSnapshot(), nil
}

// Count returns the number of sales representatives ever created.
func (repo *salesRepRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(err, "failed to count sales representatives")
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return len(repo.store.salesReps), nil
}
