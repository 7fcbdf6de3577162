package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBookingStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"PENDING":    StatusPending,
		"pending":    StatusPending,
		"Confirmed":  StatusConfirmed,
		"checked_in": StatusCheckedIn,
		"Checked-In": StatusCheckedIn,
		"completed":  StatusCompleted,
		"CANCELLED":  StatusCancelled,
		"canceled":   StatusCancelled,
	}
	for raw, want := range cases {
		got, err := ParseBookingStatus(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseBookingStatus("archived")
	assert.Error(t, err)
}

func TestBookingStatusUnmarshalRejectsUnknown(t *testing.T) {
	var b Booking
	err := json.Unmarshal([]byte(`{"id":"b1","status":"archived"}`), &b)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"id":"b1","status":"confirmed"}`), &b)
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestTransitionTable(t *testing.T) {
	assert.True(t, StatusPending.CanApply(ActionConfirm))
	assert.True(t, StatusPending.CanApply(ActionCancel))
	assert.False(t, StatusPending.CanApply(ActionComplete))

	assert.True(t, StatusConfirmed.CanApply(ActionComplete))
	assert.True(t, StatusConfirmed.CanApply(ActionCancel))
	assert.False(t, StatusConfirmed.CanApply(ActionConfirm))

	assert.True(t, StatusCheckedIn.CanApply(ActionComplete))
	assert.False(t, StatusCheckedIn.CanApply(ActionCancel))
	assert.False(t, StatusCheckedIn.CanApply(ActionConfirm))
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	actions := []BookingAction{ActionConfirm, ActionCancel, ActionComplete}
	for _, status := range []BookingStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, status.Terminal())
		for _, action := range actions {
			assert.False(t, status.CanApply(action), "%s should reject %s", status, action)
		}
		assert.Empty(t, AvailableActions(status))
	}
}

func TestAvailableActionsOrderIsStable(t *testing.T) {
	assert.Equal(t, []BookingAction{ActionConfirm, ActionCancel}, AvailableActions(StatusPending))
	assert.Equal(t, []BookingAction{ActionComplete, ActionCancel}, AvailableActions(StatusConfirmed))
	assert.Equal(t, []BookingAction{ActionComplete}, AvailableActions(StatusCheckedIn))
}
