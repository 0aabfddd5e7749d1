package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCost(t *testing.T) {
	tests := []struct {
		name         string
		pricePerHour float64
		start        string
		end          string
		is24x7       bool
		want         int64
	}{
		{"whole hours", 500, "14:00", "16:00", false, 1000},
		{"fractional hours", 500, "14:00", "15:30", false, 750},
		{"single slot", 600, "10:00", "10:30", false, 300},
		{"overnight wrap spans six hours", 500, "23:00", "05:00", true, 3000},
		{"overnight wrap fractional", 400, "23:30", "01:00", true, 600},
		{"zero duration", 500, "14:00", "14:00", false, 0},
		{"inverted interval outside 24x7 is free-invalid", 500, "16:00", "14:00", false, 0},
		{"round half up", 333, "10:00", "10:30", false, 167}, // 166.5 -> 167
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCost(tt.pricePerHour, timeString(t, tt.start), timeString(t, tt.end), tt.is24x7)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateCostMonotonicInDuration(t *testing.T) {
	const price = 450.0
	prev := int64(-1)
	ends := []string{"10:30", "11:00", "11:30", "12:00", "13:00", "15:00"}

	for _, end := range ends {
		cost := CalculateCost(price, timeString(t, "10:00"), timeString(t, end), false)
		assert.GreaterOrEqual(t, cost, prev, "cost must not decrease as duration grows (end=%s)", end)
		prev = cost
	}
}

func TestIntervalMinutes(t *testing.T) {
	assert.Equal(t, 90, IntervalMinutes(timeString(t, "14:00"), timeString(t, "15:30"), false))
	assert.Equal(t, 360, IntervalMinutes(timeString(t, "23:00"), timeString(t, "05:00"), true))
	assert.Equal(t, 1440, IntervalMinutes(timeString(t, "08:00"), timeString(t, "08:00"), true))
	assert.Equal(t, -120, IntervalMinutes(timeString(t, "16:00"), timeString(t, "14:00"), false))
}

func TestHoursToMinutes(t *testing.T) {
	assert.Equal(t, 60, HoursToMinutes(1))
	assert.Equal(t, 30, HoursToMinutes(0.5))
	assert.Equal(t, 90, HoursToMinutes(1.5))
	// 2.9*60 is 173.999... in float64; truncation would lose a minute.
	assert.Equal(t, 174, HoursToMinutes(2.9))
	assert.Equal(t, 246, HoursToMinutes(4.1))
}
