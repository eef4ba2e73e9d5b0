package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	todoerrors "github.com/kcurtet/todo/internal/errors"
)

// isoDateLayouts are the strict calendar date formats accepted before
// any keyword or natural-language interpretation.
var isoDateLayouts = []string{"2006-01-02", "2006/01/02"} //nolint:gochecknoglobals // fixed format table

// weekdayNames maps full and three-letter weekday names to weekdays.
var weekdayNames = map[string]time.Weekday{ //nolint:gochecknoglobals // fixed lookup table
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// naturalParser is the natural-language date grammar used as the last
// resolution step. Rules are registered once at init.
var naturalParser = newNaturalParser() //nolint:gochecknoglobals // parser is immutable after construction

func newNaturalParser() *when.Parser {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return p
}

// ResolveDueDate converts a free-form due date expression into an
// absolute timestamp in now's location. Resolution order, first match
// wins:
//
//  1. strict calendar date (2025-07-15 or 2025/07/15), end of that day
//  2. keywords "today" and "tomorrow", end of that day
//  3. weekday names, end of day on the next occurrence strictly after
//     now (a reference already on that weekday advances a full week)
//  4. natural-language expressions ("next friday", "in 3 days",
//     "in 3 hours"), resolved against now; day-granular results are
//     normalized to end of day, explicit times of day are kept
//
// A task due "today" stays non-overdue until the day fully elapses,
// hence the end-of-day (23:59:59) default.
func ResolveDueDate(expr string, now time.Time) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(expr))
	if normalized == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", todoerrors.ErrUnparseableDate)
	}

	for _, layout := range isoDateLayouts {
		if d, err := time.ParseInLocation(layout, normalized, now.Location()); err == nil {
			return endOfDay(d), nil
		}
	}

	switch normalized {
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}

	if wd, ok := weekdayNames[normalized]; ok {
		return endOfDay(nextWeekday(now, wd)), nil
	}

	if resolved, ok := resolveNatural(normalized, now); ok {
		return resolved, nil
	}

	return time.Time{}, fmt.Errorf(
		"%w: %q (try formats like 2025-07-15, today, tomorrow, friday, or \"in 3 days\")",
		todoerrors.ErrUnparseableDate, expr)
}

// nextWeekday returns the next occurrence of wd strictly after now.
// Never returns now's own day: same weekday means a full week ahead.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days)
}

// resolveNatural delegates to the natural-language grammar with now as
// the reference instant. Day-granular expressions ("in 3 days") come
// back carrying the reference's clock time, which means no explicit
// time-of-day was given and the end-of-day default applies; any other
// clock time ("in 3 hours", "tomorrow at 5pm") is kept as parsed.
func resolveNatural(expr string, now time.Time) (time.Time, bool) {
	r, err := naturalParser.Parse(expr, now)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	resolved := r.Time
	if sameClockTime(resolved, now) {
		return endOfDay(resolved), true
	}
	return resolved, true
}

// sameClockTime reports whether two instants share the wall-clock
// time of day, ignoring the calendar date.
func sameClockTime(a, b time.Time) bool {
	return a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}

// endOfDay returns 23:59:59 on t's calendar day, in t's location.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
