package services

import (
	"fmt"
	"strings"
	"time"
)

// Period selects a trailing calendar window ending at the moment of
// computation. Monthly and yearly use calendar arithmetic, not a fixed number
// of days, so "this month so far" tracks month boundaries.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
	PeriodAll     Period = "all"
)

// ParsePeriod accepts a period selector from a query string. Empty means all.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PeriodAll, nil
	case "weekly":
		return PeriodWeekly, nil
	case "monthly":
		return PeriodMonthly, nil
	case "yearly":
		return PeriodYearly, nil
	case "all":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Cutoff returns the start of the trailing window ending at now. The second
// return is false for PeriodAll, which has no cutoff.
func (p Period) Cutoff(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), true
	case PeriodMonthly:
		return now.AddDate(0, -1, 0), true
	case PeriodYearly:
		return now.AddDate(-1, 0, 0), true
	}
	return time.Time{}, false
}

// Dated is any record carrying a usable timestamp for period filtering.
type Dated interface {
	PeriodDate() (time.Time, bool)
}

// FilterByPeriod returns the records whose timestamp falls inside
// [now-window, now], inclusive. Records without a usable timestamp are
// excluded, never treated as always-in-range.
func FilterByPeriod[T Dated](records []T, p Period, now time.Time) []T {
	cutoff, bounded := p.Cutoff(now)
	if !bounded {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		ts, ok := r.PeriodDate()
		if !ok {
			continue
		}
		if ts.Before(cutoff) || ts.After(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}
