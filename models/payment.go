package models

import (
	"strings"
	"time"
)

// PaymentCompleted is the only payment status that participates in revenue
// aggregation; anything else is ignored, not an error.
const PaymentCompleted = "completed"

// Payment is a read-only record of a transaction tied to one booking by id.
// Amount is minor currency units (hundredths); conversion to major units is a
// display concern only.
type Payment struct {
	ID        string     `json:"id"`
	BookingID string     `json:"bookingId"`
	Amount    int64      `json:"amount"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"date,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Completed reports whether the payment counts toward revenue.
func (p Payment) Completed() bool {
	return strings.EqualFold(p.Status, PaymentCompleted)
}

// PeriodDate follows the shared field order: creation time, then the payment
// date.
func (p Payment) PeriodDate() (time.Time, bool) {
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt, true
	}
	if p.PaidAt != nil && !p.PaidAt.IsZero() {
		return *p.PaidAt, true
	}
	return time.Time{}, false
}

// Date is the calendar date used by the history month/year filters: the
// payment date when present, otherwise the creation time.
func (p Payment) Date() (time.Time, bool) {
	if p.PaidAt != nil && !p.PaidAt.IsZero() {
		return *p.PaidAt, true
	}
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt, true
	}
	return time.Time{}, false
}
