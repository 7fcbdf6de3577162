package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hotel-dashboard/models"
)

// BookingFilter narrows a booking list for the history view. Status and month
// have "all" wildcards; year does not and always narrows to exactly one year,
// matching the dashboard's single-year default.
type BookingFilter struct {
	Status string     // "", "all", or a booking status
	Month  time.Month // 0 = all months
	Year   int
}

// PaymentFilter narrows a payment list by the payment's calendar date.
type PaymentFilter struct {
	Month time.Month // 0 = all months
	Year  int
}

// FilterBookings filters in memory, no backend round trip. Bookings are
// matched on their check-in date; a booking without one can never match a
// month/year filter.
func FilterBookings(list []models.Booking, f BookingFilter) ([]models.Booking, error) {
	var status models.BookingStatus
	statusWildcard := f.Status == "" || strings.EqualFold(f.Status, "all")
	if !statusWildcard {
		parsed, err := models.ParseBookingStatus(f.Status)
		if err != nil {
			return nil, fmt.Errorf("invalid status filter: %w", err)
		}
		status = parsed
	}

	out := make([]models.Booking, 0, len(list))
	for _, b := range list {
		if !statusWildcard && b.Status != status {
			continue
		}
		if b.CheckIn == nil {
			continue
		}
		if b.CheckIn.Year() != f.Year {
			continue
		}
		if f.Month != 0 && b.CheckIn.Month() != f.Month {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// FilterPayments filters a payment list by calendar month/year.
func FilterPayments(list []models.Payment, f PaymentFilter) []models.Payment {
	out := make([]models.Payment, 0, len(list))
	for _, p := range list {
		d, ok := p.Date()
		if !ok {
			continue
		}
		if d.Year() != f.Year {
			continue
		}
		if f.Month != 0 && d.Month() != f.Month {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortBookingsByDate orders by check-in date (creation time when check-in is
// missing). Stable across equal keys.
func SortBookingsByDate(list []models.Booking, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := bookingSortDate(list[i]), bookingSortDate(list[j])
		if ascending {
			return a.Before(b)
		}
		return b.Before(a)
	})
}

// SortPaymentsByDate orders by payment date. Stable across equal keys.
func SortPaymentsByDate(list []models.Payment, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		a, _ := list[i].Date()
		b, _ := list[j].Date()
		if ascending {
			return a.Before(b)
		}
		return b.Before(a)
	})
}

// SortReviewsByRating orders by rating. Stable across equal keys.
func SortReviewsByRating(list []models.Review, ascending bool) {
	sort.SliceStable(list, func(i, j int) bool {
		if ascending {
			return list[i].Rating < list[j].Rating
		}
		return list[j].Rating < list[i].Rating
	})
}

func bookingSortDate(b models.Booking) time.Time {
	if b.CheckIn != nil {
		return *b.CheckIn
	}
	return b.CreatedAt
}
