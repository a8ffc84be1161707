package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	at := time.Date(2025, time.March, 14, 13, 42, 7, 0, loc)

	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.March, 14, 23, 59, 59, 999000000, loc), end)
	assert.Equal(t, loc, start.Location())
}

func TestDayBoundsCoversWholeDay(t *testing.T) {
	at := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	start, end := DayBounds(at)

	// The range is inclusive on both sides.
	assert.False(t, start.After(at))
	lastMilli := time.Date(2025, time.January, 1, 23, 59, 59, 999000000, time.UTC)
	assert.False(t, end.Before(lastMilli))
	assert.True(t, end.Before(time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func TestDayBoundsOnDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Spring forward: 2025-03-09 is a 23-hour day; the end must still be
	// 23:59:59.999 of the same calendar day, not 00:59 of the next.
	start, end := DayBounds(time.Date(2025, time.March, 9, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.March, 9, 23, 59, 59, 999000000, loc), end)

	// Fall back: 2025-11-02 is a 25-hour day.
	start, end = DayBounds(time.Date(2025, time.November, 2, 12, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2025, time.November, 2, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.November, 2, 23, 59, 59, 999000000, loc), end)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name    string
		month   time.Month
		year    int
		lastDay int
	}{
		{"thirty one days", time.January, 2025, 31},
		{"thirty days", time.April, 2025, 30},
		{"february", time.February, 2025, 28},
		{"february leap year", time.February, 2024, 29},
		{"december rolls into next year", time.December, 2025, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.month, tt.year, time.UTC)

			assert.Equal(t, time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(tt.year, tt.month, tt.lastDay, 23, 59, 59, 0, time.UTC), end)
		})
	}
}

func TestMidnight(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	at := time.Date(2025, time.June, 9, 18, 30, 45, 123, loc)

	got := Midnight(at)

	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, loc), got)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, time.May, 1, 9, 15, 0, 0, time.UTC)
	clock := Fixed(at)

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now())
}
