package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/kcurtet/todo/internal/clock"
)

// DefaultClock is the default clock used for time formatting.
// It can be replaced in tests with a fixed clock.
//
//nolint:gochecknoglobals // Package-level default for dependency injection
var DefaultClock clock.Clock = clock.RealClock{}

// RelativeDate formats a date relative to the current calendar day.
// Examples: "today", "tomorrow", "yesterday", "in 3 days", "2 days ago",
// or the plain date for anything more than a week out.
func RelativeDate(t time.Time) string {
	return RelativeDateWith(t, DefaultClock)
}

// RelativeDateWith formats a date relative to the provided clock's
// current day. This function allows for testable date formatting.
func RelativeDateWith(t time.Time, c clock.Clock) string {
	days := calendarDays(c.Now(), t)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days >= 2 && days <= 7:
		return fmt.Sprintf("in %d days", days)
	case days <= -2 && days >= -7:
		return fmt.Sprintf("%d days ago", -days)
	default:
		return t.Format("2006-01-02")
	}
}

// calendarDays returns the whole calendar days from from's day to to's
// day. Rounding absorbs DST transitions that make a day 23 or 25 hours.
func calendarDays(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(math.Round(toDay.Sub(fromDay).Hours() / 24))
}
