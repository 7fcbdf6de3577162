package models

import "time"

// Review is a read-only guest rating (1-5) weak-referenced to a booking. It
// only contributes to the rating average and has no lifecycle of its own.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r Review) PeriodDate() (time.Time, bool) {
	if r.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return r.CreatedAt, true
}
