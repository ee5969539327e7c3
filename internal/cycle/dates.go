// Package cycle is the single canonical implementation of the derived cycle
// computations: statistics, forward prediction, fertility, phase
// classification, and the wellness score. Every function is pure, takes
// "today" explicitly, and never errors on sparse input; callers resolve
// storage and hand records in unchanged.
package cycle

import (
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// DateOnly strips the time of day. Every comparison in this package operates
// on day-normalized values only.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

func AddDays(value time.Time, days int) time.Time {
	return DateOnly(value).AddDate(0, 0, days)
}

// DaysBetween counts whole days from one date to another, positive when "to"
// is later. Rounding absorbs the 23h/25h midnight distances around DST
// transitions.
func DaysBetween(from time.Time, to time.Time) int {
	delta := DateOnly(to).Sub(DateOnly(from))
	return int(math.Round(delta.Hours() / 24))
}

func SameDay(a time.Time, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func betweenInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !day.Before(start) && !day.After(end)
}
