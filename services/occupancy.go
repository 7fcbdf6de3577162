package services

import (
	"math"
	"time"

	"hotel-dashboard/models"
)

// OccupancySnapshot is the derived occupancy of a provider at one instant.
type OccupancySnapshot struct {
	Occupied   int `json:"occupied"`
	TotalRooms int `json:"totalRooms"`
	Rate       int `json:"rate"` // 0-100, rounded to nearest integer
}

// Occupancy counts the bookings active at now (CONFIRMED or CHECKED_IN with
// now inside their date range, inclusive) against the room inventory. The
// count is of qualifying bookings, not of distinct rooms: two confirmed
// overlapping bookings on one room count twice. now is sampled once by the
// caller so the whole computation sees a single instant.
func Occupancy(rooms []models.Room, bookings []models.Booking, now time.Time) OccupancySnapshot {
	snap := OccupancySnapshot{TotalRooms: len(rooms)}

	for _, b := range bookings {
		if b.OccupiesAt(now) {
			snap.Occupied++
		}
	}

	if snap.TotalRooms == 0 {
		return snap
	}
	snap.Rate = int(math.Round(float64(snap.Occupied) / float64(snap.TotalRooms) * 100))
	return snap
}
