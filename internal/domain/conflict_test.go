package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/ptr"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

func timeString(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func activeBooking(t *testing.T, id int64, start, end string, status BookingStatus) *Booking {
	t.Helper()
	return &Booking{
		ID:        id,
		GameID:    1,
		StartTime: timeString(t, start),
		EndTime:   timeString(t, end),
		Status:    status,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*Booking{
		activeBooking(t, 1, "10:00", "12:00", StatusConfirmed),
	}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"touches end boundary only", "09:00", "10:00", false},
		{"touches start boundary only", "12:00", "13:00", false},
		{"overlaps start", "09:30", "10:30", true},
		{"overlaps end", "11:30", "13:00", true},
		{"one minute overlap", "11:59", "13:00", true},
		{"exact containment", "10:30", "11:00", true},
		{"contains existing", "09:00", "13:00", true},
		{"identical interval", "10:00", "12:00", true},
		{"fully before", "08:00", "09:30", false},
		{"fully after", "13:00", "14:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := Interval{Start: timeString(t, tt.start), End: timeString(t, tt.end)}
			assert.Equal(t, tt.want, HasConflict(candidate, existing, nil))
		})
	}
}

func TestHasConflictIgnoresInactiveBookings(t *testing.T) {
	bookings := []*Booking{
		activeBooking(t, 1, "10:00", "12:00", StatusCanceled),
		activeBooking(t, 2, "10:00", "12:00", StatusNoShow),
		activeBooking(t, 3, "10:00", "12:00", StatusCompleted),
	}

	candidate := Interval{Start: timeString(t, "10:30"), End: timeString(t, "11:30")}
	assert.False(t, HasConflict(candidate, bookings, nil),
		"terminal statuses free the slot; only pending/confirmed occupy it")
}

func TestHasConflictCountsPendingAsOccupied(t *testing.T) {
	bookings := []*Booking{
		activeBooking(t, 1, "10:00", "12:00", StatusPending),
	}

	candidate := Interval{Start: timeString(t, "11:00"), End: timeString(t, "13:00")}
	assert.True(t, HasConflict(candidate, bookings, nil))
}

func TestHasConflictExcludesBookingBeingEdited(t *testing.T) {
	bookings := []*Booking{
		activeBooking(t, 7, "10:00", "12:00", StatusConfirmed),
		activeBooking(t, 8, "14:00", "15:00", StatusConfirmed),
	}

	// Rescheduling booking 7 within its own window must not self-conflict.
	candidate := Interval{Start: timeString(t, "10:30"), End: timeString(t, "11:30")}
	assert.False(t, HasConflict(candidate, bookings, ptr.Ptr(int64(7))))

	// But it still conflicts with other bookings.
	candidate = Interval{Start: timeString(t, "14:30"), End: timeString(t, "15:30")}
	assert.True(t, HasConflict(candidate, bookings, ptr.Ptr(int64(7))))
}

func TestHasConflictIsIdempotent(t *testing.T) {
	bookings := []*Booking{
		activeBooking(t, 1, "10:00", "12:00", StatusConfirmed),
	}
	candidate := Interval{Start: timeString(t, "11:00"), End: timeString(t, "13:00")}

	first := HasConflict(candidate, bookings, nil)
	second := HasConflict(candidate, bookings, nil)
	assert.Equal(t, first, second)
}

func TestOverlapsOvernight(t *testing.T) {
	overnight := Interval{Start: timeString(t, "23:00"), End: timeString(t, "05:00")}

	assert.True(t, overnight.Overlaps(Interval{Start: timeString(t, "23:30"), End: timeString(t, "00:30")}))
	assert.False(t, overnight.Overlaps(Interval{Start: timeString(t, "21:00"), End: timeString(t, "23:00")}),
		"boundary touch before the overnight interval is not a conflict")
	assert.True(t, overnight.Overlaps(Interval{Start: timeString(t, "22:00"), End: timeString(t, "23:30")}))
}
