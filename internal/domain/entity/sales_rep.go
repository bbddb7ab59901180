// Package entity contains the core business objects of the project.
package entity

import "slices"

// SalesRepresentative owns a portfolio of customers. The portfolio holds
// customer ids that resolve against the registry, never the customers themselves.
type SalesRepresentative struct {
	ID   int    // Assigned by the registry on creation, never reused.
	Name string // Display name.

	portfolio []int
}

// NewSalesRepresentative builds a sales representative with an empty portfolio.
func NewSalesRepresentative(name string) *SalesRepresentative {
	return &SalesRepresentative{Name: name}
}

// AddCustomer appends a customer id to the portfolio. The same id may be added more than once.
func (r *SalesRepresentative) AddCustomer(customerID int) {
	r.portfolio = append(r.portfolio, customerID)
}

// Portfolio returns the customer ids in assignment order.
func (r *SalesRepresentative) Portfolio() []int {
	return slices.Clone(r.portfolio)
}

// Holds checks if the portfolio contains a customer id.
func (r *SalesRepresentative) Holds(customerID int) bool {
	return slices.Contains(r.portfolio, customerID)
}
