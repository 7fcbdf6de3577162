package models

import "strings"

// RoomStatus is the operator-set display flag on a room. It is independent of
// the booking-derived occupancy metric and is never updated by the engine.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Room is a bookable unit belonging to a service provider. Rooms are not
// destroyed by bookings.
type Room struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Price        int64      `json:"price"` // nightly, minor units
	MaxOccupancy int        `json:"maxOccupancy"`
	Status       RoomStatus `json:"status"`
}

// UnmarshalJSON uppercases the status flag; unlike booking statuses an
// unknown room flag is kept verbatim, it carries no lifecycle semantics.
func (s *RoomStatus) UnmarshalJSON(data []byte) error {
	*s = RoomStatus(strings.ToUpper(strings.Trim(string(data), `"`)))
	return nil
}
