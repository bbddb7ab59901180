// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"math"
	"strconv"

	domainerrors "crm/internal/domain/errors"
)

// Interaction-time multipliers in thousandths, so truncation stays exact.
const (
	permille                     = 1000
	regularMultiplierPermille    = 1000
	vipMultiplierPermille        = 1200
	corporateLargePermille       = 1500
	corporateMediumPermille      = 1300
	corporateSmallPermille       = 1000
	corporateLargeEmployeeCount  = 1000
	corporateMediumEmployeeCount = 100
)

// Contact holds the identity fields shared by every kind of customer.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Customer is a tracked person or organization with an interaction history.
// Exactly one of the profile pointers is set, matching Kind.
type Customer struct {
	ID        int               // Assigned by the registry on creation, never reused.
	Name      string            // Display name of the contact person.
	Email     string            // Contact email.
	Phone     string            // Contact phone number.
	Kind      CustomerKind      // Variant tag.
	Regular   *RegularProfile   // Set for regular customers.
	VIP       *VIPProfile       // Set for VIP customers.
	Corporate *CorporateProfile // Set for corporate customers.

	history []Interaction
}

// RegularProfile holds data specific to regular customers.
type RegularProfile struct {
	Segment string // Marketing segment, e.g. "Small Business".
}

// VIPProfile holds data specific to VIP customers.
type VIPProfile struct {
	AccountManager string  // Name of the dedicated account manager.
	LoyaltyPoints  float64 // Accrued points, starts at zero and only grows.
}

// CorporateProfile holds data specific to corporate customers.
type CorporateProfile struct {
	CompanyName         string
	EmployeeCount       int
	AnnualContractValue float64
}

// TypeAction describes the kind-specific follow-up for a customer.
type TypeAction struct {
	CustomerID  int          `json:"customer_id"`
	Kind        CustomerKind `json:"kind"`
	Action      string       `json:"action"`
	Description string       `json:"description"`
}

// ContractRenewal reports the old and new annual value of a corporate contract.
type ContractRenewal struct {
	CustomerID  int     `json:"customer_id"`
	CompanyName string  `json:"company_name"`
	OldValue    float64 `json:"old_value"`
	NewValue    float64 `json:"new_value"`
}

// NewRegularCustomer builds a regular customer. The id is assigned on creation by the registry.
func NewRegularCustomer(contact Contact, segment string) *Customer {
	return &Customer{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Kind:    CustomerRegular,
		Regular: &RegularProfile{Segment: segment},
	}
}

// NewVIPCustomer builds a VIP customer with zero loyalty points.
func NewVIPCustomer(contact Contact, accountManager string) *Customer {
	return &Customer{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
		Kind:  CustomerVIP,
		VIP:   &VIPProfile{AccountManager: accountManager},
	}
}

// NewCorporateCustomer builds a corporate customer.
func NewCorporateCustomer(contact Contact, companyName string, employeeCount int, annualContractValue float64) (*Customer, error) {
	if employeeCount <= 0 {
		return nil, domainerrors.ErrInvalidEmployeeCount.WithDetails(strconv.Itoa(employeeCount))
	}
	if !validAmount(annualContractValue) {
		return nil, domainerrors.ErrInvalidAmount.WithDetails(fmt.Sprintf("annual contract value %.2f", annualContractValue))
	}

	return &Customer{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
		Kind:  CustomerCorporate,
		Corporate: &CorporateProfile{
			CompanyName:         companyName,
			EmployeeCount:       employeeCount,
			AnnualContractValue: annualContractValue,
		},
	}, nil
}

// AppendInteraction adds i to the end of the history.
func (c *Customer) AppendInteraction(i Interaction) {
	c.history = append(c.history, i)
}

// History returns the interactions in the order they were recorded.
func (c *Customer) History() []Interaction {
	out := make([]Interaction, len(c.history))
	copy(out, c.history)

	return out
}

// InteractionCount returns the number of recorded interactions.
func (c *Customer) InteractionCount() int {
	return len(c.history)
}

// BaseInteractionTime sums call and meeting minutes, before any multiplier.
func (c *Customer) BaseInteractionTime() int {
	total := 0
	for _, i := range c.history {
		total += i.BaseMinutes()
	}

	return total
}

// TotalInteractionTime applies the kind's multiplier to the base time,
// truncating toward zero.
func (c *Customer) TotalInteractionTime() int {
	base, m := c.BaseInteractionTime(), c.multiplierPermille()

	// Split before multiplying so large bases do not overflow.
	return base/permille*m + base%permille*m/permille
}

// Multiplier returns the interaction-time multiplier for the customer.
func (c *Customer) Multiplier() float64 {
	return float64(c.multiplierPermille()) / permille
}

func (c *Customer) multiplierPermille() int {
	switch c.Kind {
	case CustomerVIP:
		return vipMultiplierPermille
	case CustomerCorporate:
		if c.Corporate == nil {
			return corporateSmallPermille
		}
		switch {
		case c.Corporate.EmployeeCount > corporateLargeEmployeeCount:
			return corporateLargePermille
		case c.Corporate.EmployeeCount > corporateMediumEmployeeCount:
			return corporateMediumPermille
		default:
			return corporateSmallPermille
		}
	default:
		return regularMultiplierPermille
	}
}

// PerformTypeAction returns the follow-up appropriate for the customer's kind.
func (c *Customer) PerformTypeAction() TypeAction {
	action := TypeAction{CustomerID: c.ID, Kind: c.Kind}

	switch c.Kind {
	case CustomerVIP:
		action.Action = "schedule_quarterly_review"
		action.Description = fmt.Sprintf("Scheduling quarterly review with %s and account manager %s",
			c.Name, c.vipProfile().AccountManager)
	case CustomerCorporate:
		profile := c.corporateProfile()
		action.Action = "arrange_training"
		action.Description = fmt.Sprintf("Arranging corporate training session for %s with %d potential users",
			profile.CompanyName, profile.EmployeeCount)
	default:
		segment := ""
		if c.Regular != nil {
			segment = c.Regular.Segment
		}
		action.Action = "send_promotional_material"
		action.Description = fmt.Sprintf("Sending regular promotional materials to %s in segment %s", c.Name, segment)
	}

	return action
}

// IsLoyaltyEligible reports whether recording interactions accrues loyalty points.
func (c *Customer) IsLoyaltyEligible() bool {
	return c.Kind == CustomerVIP && c.VIP != nil
}

// AddLoyaltyPoints credits a VIP customer and returns the new balance.
func (c *Customer) AddLoyaltyPoints(amount float64) (float64, error) {
	if !c.IsLoyaltyEligible() {
		return 0, domainerrors.ErrNotVIPCustomer.WithDetails(fmt.Sprintf("customer %d is %s", c.ID, c.Kind))
	}
	if !validAmount(amount) {
		return c.VIP.LoyaltyPoints, domainerrors.ErrInvalidAmount.WithDetails(fmt.Sprintf("loyalty points %g", amount))
	}

	c.VIP.LoyaltyPoints += amount

	return c.VIP.LoyaltyPoints, nil
}

// LoyaltyPoints returns the VIP balance, zero for other kinds.
func (c *Customer) LoyaltyPoints() float64 {
	if !c.IsLoyaltyEligible() {
		return 0
	}

	return c.VIP.LoyaltyPoints
}

// RenewContract replaces the annual contract value of a corporate customer.
// The new value is not compared with the old one.
func (c *Customer) RenewContract(newValue float64) (ContractRenewal, error) {
	if c.Kind != CustomerCorporate || c.Corporate == nil {
		return ContractRenewal{}, domainerrors.ErrNotCorporateCustomer.WithDetails(fmt.Sprintf("customer %d is %s", c.ID, c.Kind))
	}
	if !validAmount(newValue) {
		return ContractRenewal{}, domainerrors.ErrInvalidAmount.WithDetails(fmt.Sprintf("annual contract value %.2f", newValue))
	}

	renewal := ContractRenewal{
		CustomerID:  c.ID,
		CompanyName: c.Corporate.CompanyName,
		OldValue:    c.Corporate.AnnualContractValue,
		NewValue:    newValue,
	}
	c.Corporate.AnnualContractValue = newValue

	return renewal, nil
}

// validAmount accepts finite, non-negative money and point amounts.
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func (c *Customer) vipProfile() VIPProfile {
	if c.VIP == nil {
		return VIPProfile{}
	}

	return *c.VIP
}

func (c *Customer) corporateProfile() CorporateProfile {
	if c.Corporate == nil {
		return CorporateProfile{}
	}

	return *c.Corporate
}
