// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"crm/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrAlreadyStored is returned by Create when the entity already has an ID.
var ErrAlreadyStored = errors.New("entity already stored")

// CustomerRepository defines the standard operations for customer persistence.
// Implementations own the canonical customer entities; returned pointers are
// those entities, so mutations made through them are visible to every reader.
type CustomerRepository interface {
	// Create stores a new customer and assigns it the next sequential ID.
	// A customer that already has an ID is rejected with ErrAlreadyStored.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a single customer by its ID.
	FindByID(ctx context.Context, id int) (*entity.Customer, error)

	// List returns every customer in creation order.
	List(ctx context.Context) ([]*entity.Customer, error)

	// Count returns the number of customers ever created.
	Count(ctx context.Context) (int, error)

	// Note: there is no Delete; IDs are never reused.
}
