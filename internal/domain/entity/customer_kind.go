// Package entity contains the core business objects of the project.
package entity

// CustomerKind tags the variant of a Customer.
type CustomerKind string

const (
	// CustomerRegular indicates a regular customer.
	CustomerRegular CustomerKind = "Regular"
	// CustomerVIP indicates a VIP customer earning loyalty points.
	CustomerVIP CustomerKind = "VIP"
	// CustomerCorporate indicates a corporate account.
	CustomerCorporate CustomerKind = "Corporate"
)

// CustomerKinds lists every kind in reporting order.
var CustomerKinds = []CustomerKind{CustomerRegular, CustomerVIP, CustomerCorporate}

// String returns the string representation of the CustomerKind.
func (k CustomerKind) String() string {
	return string(k)
}

// IsValid checks if the CustomerKind is a valid value.
func (k CustomerKind) IsValid() bool {
	switch k {
	case CustomerRegular, CustomerVIP, CustomerCorporate:
		return true
	default:
		return false
	}
}
