// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strconv"
	"time"

	domainerrors "crm/internal/domain/errors"

	"github.com/google/uuid"
)

// Loyalty accrual per interaction, applied to VIP customers only.
const (
	CallLoyaltyPerMinute    = 0.5
	EmailLoyaltyFlat        = 10.0
	MeetingLoyaltyPerMinute = 2.0
)

// Interaction is one recorded contact event with a customer.
// Its fields are set once by a constructor and never change afterwards.
type Interaction struct {
	id        uuid.UUID
	kind      InteractionKind
	timestamp time.Time
	content   string
	duration  int    // minutes, Call and Meeting only
	subject   string // Email only
	location  string // Meeting only
}

// NewCall creates a call interaction lasting duration minutes.
func NewCall(content string, duration int, at time.Time) (Interaction, error) {
	if duration < 0 {
		return Interaction{}, domainerrors.ErrInvalidDuration.WithDetails(strconv.Itoa(duration))
	}

	return Interaction{
		id:        uuid.New(),
		kind:      InteractionCall,
		timestamp: at,
		content:   content,
		duration:  duration,
	}, nil
}

// NewEmail creates an email interaction.
func NewEmail(content, subject string, at time.Time) Interaction {
	return Interaction{
		id:        uuid.New(),
		kind:      InteractionEmail,
		timestamp: at,
		content:   content,
		subject:   subject,
	}
}

// NewMeeting creates a meeting interaction held at location for duration minutes.
func NewMeeting(content, location string, duration int, at time.Time) (Interaction, error) {
	if duration < 0 {
		return Interaction{}, domainerrors.ErrInvalidDuration.WithDetails(strconv.Itoa(duration))
	}

	return Interaction{
		id:        uuid.New(),
		kind:      InteractionMeeting,
		timestamp: at,
		content:   content,
		location:  location,
		duration:  duration,
	}, nil
}

func (i Interaction) ID() uuid.UUID         { return i.id }
func (i Interaction) Kind() InteractionKind { return i.kind }
func (i Interaction) Timestamp() time.Time  { return i.timestamp }
func (i Interaction) Content() string       { return i.content }
func (i Interaction) Duration() int         { return i.duration }
func (i Interaction) Subject() string       { return i.subject }
func (i Interaction) Location() string      { return i.location }

// BaseMinutes is the contribution of the interaction to a customer's base
// interaction time. Emails contribute nothing.
func (i Interaction) BaseMinutes() int {
	switch i.kind {
	case InteractionCall, InteractionMeeting:
		return i.duration
	default:
		return 0
	}
}

// LoyaltyPoints is what recording this interaction awards a VIP customer.
func (i Interaction) LoyaltyPoints() float64 {
	switch i.kind {
	case InteractionCall:
		return float64(i.duration) * CallLoyaltyPerMinute
	case InteractionEmail:
		return EmailLoyaltyFlat
	case InteractionMeeting:
		return float64(i.duration) * MeetingLoyaltyPerMinute
	default:
		return 0
	}
}
