// Package entity contains the core business objects of the project.
package entity

// InteractionKind tags the variant of an Interaction.
type InteractionKind string

const (
	// InteractionCall is a phone call with a duration.
	InteractionCall InteractionKind = "Call"
	// InteractionEmail is an email with a subject.
	InteractionEmail InteractionKind = "Email"
	// InteractionMeeting is a meeting with a location and a duration.
	InteractionMeeting InteractionKind = "Meeting"
)

// String returns the string representation of the InteractionKind.
func (k InteractionKind) String() string {
	return string(k)
}

// IsValid checks if the InteractionKind is a valid value.
func (k InteractionKind) IsValid() bool {
	switch k {
	case InteractionCall, InteractionEmail, InteractionMeeting:
		return true
	default:
		return false
	}
}
