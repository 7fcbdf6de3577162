package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-dashboard/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func makeRooms(n int) []models.Room {
	rooms := make([]models.Room, n)
	for i := range rooms {
		rooms[i] = models.Room{ID: string(rune('a' + i)), Status: models.RoomAvailable}
	}
	return rooms
}

func activeBooking(id string, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:       id,
		Status:   status,
		CheckIn:  datePtr(2025, time.March, 10),
		CheckOut: datePtr(2025, time.March, 20),
	}
}

func TestOccupancyZeroRooms(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	snap := Occupancy(nil, []models.Booking{activeBooking("b1", models.StatusConfirmed)}, now)

	assert.Equal(t, 0, snap.Rate)
	assert.Equal(t, 0, snap.TotalRooms)
	assert.Equal(t, 1, snap.Occupied)
}

func TestOccupancyTenRoomsThreeConfirmed(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		activeBooking("b1", models.StatusConfirmed),
		activeBooking("b2", models.StatusConfirmed),
		activeBooking("b3", models.StatusConfirmed),
		activeBooking("b4", models.StatusPending),   // not active
		activeBooking("b5", models.StatusCancelled), // never counts
	}

	snap := Occupancy(makeRooms(10), bookings, now)
	assert.Equal(t, 3, snap.Occupied)
	assert.Equal(t, 10, snap.TotalRooms)
	assert.Equal(t, 30, snap.Rate)
}

func TestOccupancyDateRangeInclusive(t *testing.T) {
	b := activeBooking("b1", models.StatusCheckedIn)

	onCheckIn := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	onCheckOut := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	after := time.Date(2025, time.March, 20, 0, 0, 1, 0, time.UTC)

	assert.True(t, b.OccupiesAt(onCheckIn))
	assert.True(t, b.OccupiesAt(onCheckOut))
	assert.False(t, b.OccupiesAt(after))
}

func TestOccupancyCountsBookingsNotRooms(t *testing.T) {
	// Two confirmed overlapping bookings on the same room count twice.
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	b1 := activeBooking("b1", models.StatusConfirmed)
	b2 := activeBooking("b2", models.StatusConfirmed)
	b1.RoomID, b2.RoomID = "r1", "r1"

	snap := Occupancy(makeRooms(4), []models.Booking{b1, b2}, now)
	assert.Equal(t, 2, snap.Occupied)
	assert.Equal(t, 50, snap.Rate)
}

func TestOccupancyMissingDatesExcluded(t *testing.T) {
	now := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	b := models.Booking{ID: "b1", Status: models.StatusConfirmed}

	snap := Occupancy(makeRooms(2), []models.Booking{b}, now)
	assert.Equal(t, 0, snap.Occupied)
	assert.Equal(t, 0, snap.Rate)
}
