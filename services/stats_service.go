package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"hotel-dashboard/models"
	"hotel-dashboard/session"
)

// StatsSnapshot is the dashboard's summary block. Revenue stays in minor
// currency units; AverageRating is the raw arithmetic mean so downstream
// computation never works from a display-rounded value.
type StatsSnapshot struct {
	Period        Period  `json:"period"`
	BookingCount  int     `json:"bookingCount"`
	Revenue       int64   `json:"revenue"`
	OccupancyRate int     `json:"occupancyRate"`
	Occupied      int     `json:"occupied"`
	TotalRooms    int     `json:"totalRooms"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// DisplayRating is the mean rounded to one decimal place for rendering.
func (s StatsSnapshot) DisplayRating() float64 {
	return math.Round(s.AverageRating*10) / 10
}

// StatsService composes the period filter, the occupancy calculator and the
// payment/review folds into one snapshot per request.
type StatsService struct {
	api PlatformAPI
	now func() time.Time
}

func NewStatsService(api PlatformAPI) *StatsService {
	return &StatsService{api: api, now: time.Now}
}

// Snapshot fetches bookings, rooms, payments and reviews concurrently and
// folds them into the summary statistics. The four fetches are joined
// all-or-nothing: if any fails the whole snapshot fails with an
// AggregationError naming the failed sources, never a partially zero-filled
// result. Booking count and revenue honor the period window; occupancy is
// always "right now"; the rating average covers all reviews.
func (s *StatsService) Snapshot(ctx context.Context, sess session.Session, period Period) (StatsSnapshot, error) {
	var zero StatsSnapshot

	if err := sess.Valid(); err != nil {
		return zero, err
	}

	var (
		bookings []models.Booking
		rooms    []models.Room
		payments []models.Payment
		reviews  []models.Review
	)

	var mu sync.Mutex
	failed := make(map[string]error)
	record := func(source string, err error) error {
		if err == nil {
			return nil
		}
		mu.Lock()
		failed[source] = err
		mu.Unlock()
		return fmt.Errorf("%s: %w", source, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.api.ListBookings(gctx, sess)
		return record("bookings", err)
	})
	g.Go(func() error {
		var err error
		rooms, err = s.api.ListRooms(gctx, sess)
		return record("rooms", err)
	})
	g.Go(func() error {
		var err error
		payments, err = s.api.ListPayments(gctx, sess)
		return record("payments", err)
	})
	g.Go(func() error {
		var err error
		reviews, err = s.api.ListReviews(gctx, sess)
		return record("reviews", err)
	})

	if err := g.Wait(); err != nil {
		names := make([]string, 0, len(failed))
		for name := range failed {
			names = append(names, name)
		}
		sort.Strings(names)
		return zero, &models.AggregationError{Failed: names, Cause: err}
	}

	// One instant for the whole computation.
	now := s.now()

	snap := StatsSnapshot{Period: period}
	snap.BookingCount = len(FilterByPeriod(bookings, period, now))

	for _, p := range FilterByPeriod(payments, period, now) {
		if p.Completed() {
			snap.Revenue += p.Amount
		}
	}

	occ := Occupancy(rooms, bookings, now)
	snap.OccupancyRate = occ.Rate
	snap.Occupied = occ.Occupied
	snap.TotalRooms = occ.TotalRooms

	snap.TotalReviews = len(reviews)
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		snap.AverageRating = float64(sum) / float64(len(reviews))
	}

	return snap, nil
}
