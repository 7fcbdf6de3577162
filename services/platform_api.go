package services

import (
	"context"

	"hotel-dashboard/models"
	"hotel-dashboard/platform"
	"hotel-dashboard/session"
)

// PlatformAPI is what the services need from the hotel platform. The HTTP
// client in the platform package implements it; tests substitute fakes.
type PlatformAPI interface {
	ListBookings(ctx context.Context, sess session.Session) ([]models.Booking, error)
	ListRooms(ctx context.Context, sess session.Session) ([]models.Room, error)
	ListPayments(ctx context.Context, sess session.Session) ([]models.Payment, error)
	ListReviews(ctx context.Context, sess session.Session) ([]models.Review, error)
	TransitionBooking(ctx context.Context, sess session.Session, bookingID string, action models.BookingAction, payload *platform.TransitionPayload) (models.Booking, error)
}
