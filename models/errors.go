package models

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes shared by every layer of the engine. Services return these (or
// wrap them); controllers translate them to HTTP statuses.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrNotFound            = errors.New("booking_not_found")
	ErrIllegalTransition   = errors.New("illegal_transition")
	ErrOperationInProgress = errors.New("operation_in_progress")
	ErrTransport           = errors.New("transport_error")
)

// IllegalTransitionError carries the client-side detail of a rejected
// transition so the UI can tell "already done" apart from "never legal".
type IllegalTransitionError struct {
	From   BookingStatus
	Action BookingAction
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal_transition: cannot %s a booking in status %s", e.Action, e.From)
}

// Is makes errors.Is(err, ErrIllegalTransition) match the detailed form.
func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// AggregationError reports that one or more of the parallel stats fetches
// failed. The snapshot is all-or-nothing: callers retry the whole fan-out.
type AggregationError struct {
	Failed []string // source names, e.g. "bookings", "rooms"
	Cause  error    // first failure observed
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("stats aggregation failed (%s): %v", strings.Join(e.Failed, ", "), e.Cause)
}

func (e *AggregationError) Unwrap() error { return e.Cause }
