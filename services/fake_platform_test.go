package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hotel-dashboard/models"
	"hotel-dashboard/platform"
	"hotel-dashboard/session"
)

// fakePlatform implements PlatformAPI in memory, reproducing the backend's
// authoritative behavior: it applies the transition table itself and answers
// not-found / illegal-transition the way the real platform would.
type fakePlatform struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
	rooms    []models.Room
	payments []models.Payment
	reviews  []models.Review

	bookingsErr error
	roomsErr    error
	paymentsErr error
	reviewsErr  error

	listCalls       int
	transitionCalls int

	// transitionGate, when set, is closed signalling entry and then
	// transitionHold is awaited, letting tests keep a transition in flight.
	transitionGate chan struct{}
	transitionHold chan struct{}
}

func newFakePlatform(bookings ...models.Booking) *fakePlatform {
	f := &fakePlatform{bookings: make(map[string]models.Booking)}
	for _, b := range bookings {
		f.bookings[b.ID] = b
	}
	return f
}

func (f *fakePlatform) ListBookings(_ context.Context, _ session.Session) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.bookingsErr != nil {
		return nil, f.bookingsErr
	}
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakePlatform) ListRooms(_ context.Context, _ session.Session) ([]models.Room, error) {
	if f.roomsErr != nil {
		return nil, f.roomsErr
	}
	return f.rooms, nil
}

func (f *fakePlatform) ListPayments(_ context.Context, _ session.Session) ([]models.Payment, error) {
	if f.paymentsErr != nil {
		return nil, f.paymentsErr
	}
	return f.payments, nil
}

func (f *fakePlatform) ListReviews(_ context.Context, _ session.Session) ([]models.Review, error) {
	if f.reviewsErr != nil {
		return nil, f.reviewsErr
	}
	return f.reviews, nil
}

func (f *fakePlatform) TransitionBooking(_ context.Context, _ session.Session, bookingID string, action models.BookingAction, payload *platform.TransitionPayload) (models.Booking, error) {
	if f.transitionGate != nil {
		close(f.transitionGate)
		f.transitionGate = nil
		<-f.transitionHold
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.transitionCalls++

	b, ok := f.bookings[bookingID]
	if !ok {
		return models.Booking{}, models.ErrNotFound
	}
	if !b.Status.CanApply(action) {
		return models.Booking{}, fmt.Errorf("%w: %s from %s", models.ErrIllegalTransition, action, b.Status)
	}

	now := time.Now().UTC()
	switch action {
	case models.ActionConfirm:
		b.Status = models.StatusConfirmed
		b.ConfirmedAt = &now
	case models.ActionCancel:
		b.Status = models.StatusCancelled
		b.CancelledAt = &now
		if payload != nil {
			b.CancellationReason = payload.Reason
		}
	case models.ActionComplete:
		b.Status = models.StatusCompleted
	}

	f.bookings[bookingID] = b
	return b, nil
}

func testSession() session.Session {
	return session.Session{Token: "test-token", ServiceProviderID: "sp-1"}
}
