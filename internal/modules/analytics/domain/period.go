package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "huntlog/internal/platform/errors"
)

const dateLayout = "2006-01-02"

// Period names accepted by ResolvePeriod.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var Periods = []string{PeriodToday, PeriodWeek, PeriodMonth, PeriodYear}

// ResolvePeriod returns the inclusive YYYY-MM-DD range ending today. Weeks
// start on Monday.
func ResolvePeriod(name string, now time.Time) (string, string, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start time.Time
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PeriodToday:
		start = today
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
	case PeriodMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case PeriodYear:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
	default:
		return "", "", fmt.Errorf("%w: unknown period %q (want %s)", apperrors.ErrInvalidInput, name, strings.Join(Periods, ", "))
	}
	return start.Format(dateLayout), today.Format(dateLayout), nil
}

// NormalizeDate accepts YYYY-MM-DD or DD-MM-YYYY and returns YYYY-MM-DD.
// Empty input stays empty.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range []string{dateLayout, "02-01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: date %q must be YYYY-MM-DD or DD-MM-YYYY", apperrors.ErrInvalidInput, s)
}
