package domain

import (
	"math"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// IntervalMinutes returns the duration of [start, end) in minutes.
//
// Under 24/7 operation an end <= start wraps past midnight (23:00-05:00 is
// six hours). Outside 24/7 mode such an interval is invalid and the duration
// is reported as <= 0; callers must treat that as an invalid selection, not a
// free booking.
func IntervalMinutes(start, end types.TimeString, is24x7 bool) int {
	s := start.Minutes()
	e := end.Minutes()
	if e <= s && is24x7 {
		e += MinutesPerDay
	}
	return e - s
}

// HoursToMinutes converts a possibly fractional hour bound to whole minutes,
// rounding to absorb float error (2.9 hours is 174 minutes, not 173). Every
// duration-bound comparison must go through this so the bounds cannot
// disagree between slot generation and booking validation.
func HoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// CalculateCost prices a candidate interval: duration in rational hours times
// the game's hourly rate, rounded half-up to whole rupees. Zero or negative
// durations cost 0.
func CalculateCost(pricePerHour float64, start, end types.TimeString, is24x7 bool) int64 {
	minutes := IntervalMinutes(start, end, is24x7)
	if minutes <= 0 {
		return 0
	}
	hours := float64(minutes) / 60.0
	return int64(math.Floor(hours*pricePerHour + 0.5))
}
