package services

import (
	"context"
	"fmt"
	"sync"

	"hotel-dashboard/models"
	"hotel-dashboard/platform"
	"hotel-dashboard/session"
)

// LifecycleService drives booking status transitions. It keeps the provider's
// booking array in memory (the only local state the dashboard holds),
// revalidates every requested transition against the lifecycle table before
// going to the platform, and treats the platform's verdict as authoritative.
type LifecycleService struct {
	api PlatformAPI

	mu       sync.Mutex
	bookings map[string]models.Booking
	inflight map[string]struct{}
}

func NewLifecycleService(api PlatformAPI) *LifecycleService {
	return &LifecycleService{
		api:      api,
		bookings: make(map[string]models.Booking),
		inflight: make(map[string]struct{}),
	}
}

// Load refreshes the local booking array from the platform and returns it.
func (s *LifecycleService) Load(ctx context.Context, sess session.Session) ([]models.Booking, error) {
	if err := sess.Valid(); err != nil {
		return nil, err
	}

	list, err := s.api.ListBookings(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	s.mu.Lock()
	s.bookings = make(map[string]models.Booking, len(list))
	for _, b := range list {
		s.bookings[b.ID] = b
	}
	s.mu.Unlock()

	return list, nil
}

// Confirm moves a PENDING booking to CONFIRMED.
func (s *LifecycleService) Confirm(ctx context.Context, sess session.Session, bookingID string) (models.Booking, error) {
	return s.transition(ctx, sess, bookingID, models.ActionConfirm, nil)
}

// Cancel moves a PENDING or CONFIRMED booking to CANCELLED. The reason is
// stored verbatim and may be empty.
func (s *LifecycleService) Cancel(ctx context.Context, sess session.Session, bookingID, reason string) (models.Booking, error) {
	return s.transition(ctx, sess, bookingID, models.ActionCancel, &platform.TransitionPayload{Reason: reason})
}

// Complete moves a CONFIRMED or CHECKED_IN booking to COMPLETED.
func (s *LifecycleService) Complete(ctx context.Context, sess session.Session, bookingID string) (models.Booking, error) {
	return s.transition(ctx, sess, bookingID, models.ActionComplete, nil)
}

// AvailableActions computes the legal operator actions for a booking from the
// local array, loading it first if needed. This is what the UI uses to decide
// which buttons to render, without a round trip per booking.
func (s *LifecycleService) AvailableActions(ctx context.Context, sess session.Session, bookingID string) ([]models.BookingAction, error) {
	if err := sess.Valid(); err != nil {
		return nil, err
	}

	b, ok := s.lookup(bookingID)
	if !ok {
		if _, err := s.Load(ctx, sess); err != nil {
			return nil, err
		}
		if b, ok = s.lookup(bookingID); !ok {
			return nil, models.ErrNotFound
		}
	}
	return models.AvailableActions(b.Status), nil
}

func (s *LifecycleService) lookup(bookingID string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[bookingID]
	return b, ok
}

// transition is the single path for every lifecycle operation: reject while a
// request for the same id is in flight, pre-validate against the transition
// table, then let the platform decide and store its answer.
func (s *LifecycleService) transition(ctx context.Context, sess session.Session, bookingID string, action models.BookingAction, payload *platform.TransitionPayload) (models.Booking, error) {
	var zero models.Booking

	if err := sess.Valid(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	if _, busy := s.inflight[bookingID]; busy {
		s.mu.Unlock()
		return zero, models.ErrOperationInProgress
	}
	current, known := s.bookings[bookingID]
	if known && !current.Status.CanApply(action) {
		s.mu.Unlock()
		return zero, &models.IllegalTransitionError{From: current.Status, Action: action}
	}
	s.inflight[bookingID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, bookingID)
		s.mu.Unlock()
	}()

	if !known {
		// Unknown locally, likely a stale view. Refresh once so a concurrent
		// change in another session shows up as illegal_transition instead of
		// a surprise from the backend.
		if list, err := s.api.ListBookings(ctx, sess); err == nil {
			s.mu.Lock()
			for _, b := range list {
				s.bookings[b.ID] = b
			}
			current, known = s.bookings[bookingID]
			s.mu.Unlock()
			if known && !current.Status.CanApply(action) {
				return zero, &models.IllegalTransitionError{From: current.Status, Action: action}
			}
		}
	}

	updated, err := s.api.TransitionBooking(ctx, sess, bookingID, action, payload)
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	s.bookings[updated.ID] = updated
	s.mu.Unlock()

	return updated, nil
}
