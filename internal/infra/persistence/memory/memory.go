// Package memory contains the in-process implementation of the persistence layer.
// Entities live in arena tables indexed by their sequential IDs and disappear with the process.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"crm/internal/domain/entity"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// Store is the registry arena. customers[i] has ID i+1, and likewise for salesReps.
// The mutex guards the tables and counters; entity fields are mutated by a
// single caller at a time.
type Store struct {
	mu             sync.RWMutex
	customers      []*entity.Customer
	salesReps      []*entity.SalesRepresentative
	nextCustomerID int
	nextSalesRepID int
}

// NewStore creates an empty arena whose counters start at 1.
func NewStore() *Store {
	return &Store{
		nextCustomerID: 1,
		nextSalesRepID: 1,
	}
}

// New creates the arena and reports its final size when the application stops.
func New(params Params) *Store {
	store := NewStore()

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			store.mu.RLock()
			defer store.mu.RUnlock()

			params.Logger.Debug("Discarding in-memory registry",
				slog.Int("customers", len(store.customers)),
				slog.Int("sales_reps", len(store.salesReps)),
			)

			return nil
		},
	})

	return store
}

// insertCustomer reports false when the entity already carries an ID.
func (s *Store) insertCustomer(customer *entity.Customer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customer.ID != 0 {
		return false
	}

	customer.ID = s.nextCustomerID
	s.nextCustomerID++
	s.customers = append(s.customers, customer)

	return true
}

func (s *Store) customerAt(id int) (*entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.customers) {
		return nil, false
	}

	return s.customers[id-1], true
}

func (s *Store) customerSnapshot() []*entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Customer, len(s.customers))
	copy(out, s.customers)

	return out
}

// insertSalesRep reports false when the entity already carries an ID.
func (s *Store) insertSalesRep(rep *entity.SalesRepresentative) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rep.ID != 0 {
		return false
	}

	rep.ID = s.nextSalesRepID
	s.nextSalesRepID++
	s.salesReps = append(s.salesReps, rep)

	return true
}

func (s *Store) salesRepAt(id int) (*entity.SalesRepresentative, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id < 1 || id > len(s.salesReps) {
		return nil, false
	}

	return s.salesReps[id-1], true
}

func (s *Store) salesRepSnapshot() []*entity.SalesRepresentative {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.SalesRepresentative, len(s.salesReps))
	copy(out, s.salesReps)

	return out
}
