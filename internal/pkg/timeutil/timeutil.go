package timeutil

import "time"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now directly so that status classification is deterministic in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

// DayBounds returns the inclusive range covering the calendar day of t,
// from 00:00:00.000 to 23:59:59.999 in t's location. Stored timestamps carry
// millisecond precision, so the upper bound is inclusive rather than half-open.
// Both bounds are built from wall-clock fields, not duration arithmetic, so
// the end stays on t's calendar day across DST transitions.
func DayBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	return start, end
}

// Midnight truncates t to 00:00 of its calendar day, keeping the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthBounds returns the inclusive range covering the given month, from day 1
// 00:00:00 to the last day 23:59:59. The last day is obtained by asking for
// day 0 of the following month, which time.Date normalizes backwards.
func MonthBounds(month time.Month, year int, loc *time.Location) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end = time.Date(year, month+1, 0, 23, 59, 59, 0, loc)
	return start, end
}
