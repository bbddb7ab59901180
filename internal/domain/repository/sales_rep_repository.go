package repository

import (
	"context"
	"errors"

	"crm/internal/domain/entity"
)

// ErrSalesRepNotFound is returned when a sales representative is not found.
var ErrSalesRepNotFound = errors.New("sales representative not found")

// SalesRepRepository defines the standard operations for sales representative persistence.
type SalesRepRepository interface {
	// Create stores a new sales representative and assigns it the next sequential ID.
	// A representative that already has an ID is rejected with ErrAlreadyStored.
	Create(ctx context.Context, rep *entity.SalesRepresentative) error

	// FindByID retrieves a single sales representative by its ID.
	FindByID(ctx context.Context, id int) (*entity.SalesRepresentative, error)

	// List returns every sales representative in creation order.
	List(ctx context.Context) ([]*entity.SalesRepresentative, error)

	// Count returns the number of sales representatives ever created.
	Count(ctx context.Context) (int, error)
}
