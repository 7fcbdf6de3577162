package models

import (
	"fmt"
	"strings"
)

// BookingStatus is the lifecycle state of a booking. The platform stores it as
// a string; locally it is a closed enumeration so an unrecognized value is an
// error instead of a silent no-op.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCheckedIn BookingStatus = "CHECKED_IN"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// BookingAction is an operator-triggered lifecycle transition.
type BookingAction string

const (
	ActionConfirm  BookingAction = "confirm"
	ActionCancel   BookingAction = "cancel"
	ActionComplete BookingAction = "complete"
)

// ParseBookingStatus accepts the wire spelling case-insensitively.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return StatusPending, nil
	case "CONFIRMED":
		return StatusConfirmed, nil
	case "CHECKED_IN", "CHECKED-IN", "CHECKEDIN":
		return StatusCheckedIn, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "CANCELLED", "CANCELED":
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// ParseBookingAction validates an action name from a request path or payload.
func ParseBookingAction(s string) (BookingAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "confirm":
		return ActionConfirm, nil
	case "cancel":
		return ActionCancel, nil
	case "complete":
		return ActionComplete, nil
	}
	return "", fmt.Errorf("unknown booking action %q", s)
}

// UnmarshalJSON normalizes the platform's status spelling on decode.
func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	parsed, err := ParseBookingStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Terminal reports whether no further transition is permitted.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// transitions is the authoritative client-side copy of the lifecycle table:
//
//	PENDING    -> confirm, cancel
//	CONFIRMED  -> complete, cancel
//	CHECKED_IN -> complete
//
// COMPLETED and CANCELLED accept nothing. The backend keeps the persisted
// truth; this table exists so the UI can offer actions without a round trip
// and so stale concurrent updates surface as illegal transitions.
var transitions = map[BookingStatus][]BookingAction{
	StatusPending:   {ActionConfirm, ActionCancel},
	StatusConfirmed: {ActionComplete, ActionCancel},
	StatusCheckedIn: {ActionComplete},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanApply reports whether action is a legal transition from s.
func (s BookingStatus) CanApply(action BookingAction) bool {
	for _, a := range transitions[s] {
		if a == action {
			return true
		}
	}
	return false
}

// AvailableActions returns the actions an operator may trigger from status s,
// in a stable order for rendering.
func AvailableActions(s BookingStatus) []BookingAction {
	out := make([]BookingAction, len(transitions[s]))
	copy(out, transitions[s])
	return out
}
