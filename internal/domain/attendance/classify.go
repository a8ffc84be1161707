package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lateness cutoff: anything strictly after 09:30 local time is late.
// 09:30:00 on the dot still counts as present.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 30

	// Worked durations under this many hours demote the day to half-day.
	halfDayThresholdHours = 4.0
)

// ClassifyCheckIn derives the day's initial status from the check-in time.
func ClassifyCheckIn(checkIn time.Time) Status {
	if checkIn.Hour() > lateCutoffHour ||
		(checkIn.Hour() == lateCutoffHour && checkIn.Minute() > lateCutoffMinute) {
		return StatusLate
	}
	return StatusPresent
}

// ClassifyCheckOut derives the final status and total worked hours at
// check-out. Less than four hours overrides whatever check-in produced with
// half-day; otherwise the check-in status stands (late stays late).
func ClassifyCheckOut(checkIn, checkOut time.Time, current Status) (Status, float64) {
	hours := RoundHours(checkOut.Sub(checkIn))
	if hours < halfDayThresholdHours {
		return StatusHalfDay, hours
	}
	return current, hours
}

// RoundHours converts a duration to hours rounded half-up to two decimals.
func RoundHours(d time.Duration) float64 {
	return RoundHoursValue(d.Hours())
}

// RoundHoursValue rounds an hour figure half-up to two decimals. Summaries sum
// raw values first and round once at the end, so both forms are needed.
func RoundHoursValue(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}
