package models

import (
	"time"
)

// Booking is a reservation of one room for a guest over a date range, owned by
// a single service provider for its whole lifetime. Guest fields are a
// denormalized copy taken at creation, not a live reference.
type Booking struct {
	ID                string `json:"id"`
	RoomID            string `json:"roomId"`
	ServiceProviderID string `json:"serviceProviderId"`

	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail,omitempty"`
	GuestPhone string `json:"guestPhone,omitempty"`

	CheckIn     *time.Time `json:"checkIn"`
	CheckOut    *time.Time `json:"checkOut"`
	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	// Amounts are minor currency units. TotalAmount is the stored value and
	// stays authoritative for display even when it drifts from
	// PricePerNight × Nights.
	PricePerNight int64 `json:"pricePerNight"`
	Nights        int   `json:"nights"`
	TotalAmount   int64 `json:"totalAmount"`

	Status             BookingStatus `json:"status"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
}

// PeriodDate picks the timestamp used for trailing-window filtering:
// creation time first, check-in date as fallback.
func (b Booking) PeriodDate() (time.Time, bool) {
	if !b.CreatedAt.IsZero() {
		return b.CreatedAt, true
	}
	if b.CheckIn != nil && !b.CheckIn.IsZero() {
		return *b.CheckIn, true
	}
	return time.Time{}, false
}

// OccupiesAt reports whether the booking counts toward occupancy at the given
// instant: CONFIRMED or CHECKED_IN, with now inside [checkIn, checkOut]
// inclusive on both ends.
func (b Booking) OccupiesAt(now time.Time) bool {
	if b.Status != StatusConfirmed && b.Status != StatusCheckedIn {
		return false
	}
	if b.CheckIn == nil || b.CheckOut == nil {
		return false
	}
	return !now.Before(*b.CheckIn) && !now.After(*b.CheckOut)
}
