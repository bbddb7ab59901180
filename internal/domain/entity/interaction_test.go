package entity

import (
	"testing"
	"time"

	domainerrors "crm/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestNewCall(t *testing.T) {
	call, err := NewCall("Discussed new product features", 15, testTime)
	require.NoError(t, err)

	assert.Equal(t, InteractionCall, call.Kind())
	assert.Equal(t, "Discussed new product features", call.Content())
	assert.Equal(t, 15, call.Duration())
	assert.Equal(t, testTime, call.Timestamp())
	assert.NotEqual(t, uuid.Nil, call.ID())
	assert.Empty(t, call.Subject())
	assert.Empty(t, call.Location())
}

func TestNewEmail(t *testing.T) {
	email := NewEmail("Sending exclusive offer details", "VIP Exclusive Offer", testTime)

	assert.Equal(t, InteractionEmail, email.Kind())
	assert.Equal(t, "VIP Exclusive Offer", email.Subject())
	assert.Equal(t, 0, email.Duration())
	assert.Equal(t, 0, email.BaseMinutes())
}

func TestNewMeeting(t *testing.T) {
	meeting, err := NewMeeting("Quarterly review meeting", "Headquarters", 60, testTime)
	require.NoError(t, err)

	assert.Equal(t, InteractionMeeting, meeting.Kind())
	assert.Equal(t, "Headquarters", meeting.Location())
	assert.Equal(t, 60, meeting.BaseMinutes())
}

// Negative durations are rejected rather than silently summed.
func TestNegativeDurationRejected(t *testing.T) {
	_, err := NewCall("c", -1, testTime)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidDuration))

	_, err = NewMeeting("m", "HQ", -30, testTime)
	require.Error(t, err)
	assert.True(t, domainerrors.IsPreconditionViolation(err))
}

func TestZeroDurationAccepted(t *testing.T) {
	call, err := NewCall("missed", 0, testTime)
	require.NoError(t, err)
	assert.Equal(t, 0, call.BaseMinutes())
}

func TestInteraction_LoyaltyPoints(t *testing.T) {
	call, err := NewCall("c", 15, testTime)
	require.NoError(t, err)
	meeting, err := NewMeeting("m", "HQ", 60, testTime)
	require.NoError(t, err)

	assert.InDelta(t, 7.5, call.LoyaltyPoints(), 1e-9)
	assert.InDelta(t, 10.0, NewEmail("e", "s", testTime).LoyaltyPoints(), 1e-9)
	assert.InDelta(t, 120.0, meeting.LoyaltyPoints(), 1e-9)
}

func TestInteractionKind_IsValid(t *testing.T) {
	assert.True(t, InteractionCall.IsValid())
	assert.True(t, InteractionEmail.IsValid())
	assert.True(t, InteractionMeeting.IsValid())
	assert.False(t, InteractionKind("Fax").IsValid())
}
