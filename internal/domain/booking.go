package domain

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// Booking represents a reservation of one game for a [start, end) interval
// on a calendar date. The end is exclusive; an end time numerically <= the
// start denotes an overnight interval spilling into the next day (valid only
// under 24/7 operation).
type Booking struct {
	ID          int64
	UserID      int64
	GameID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	TotalCost   int64 // whole rupees, computed once at creation

	// Snapshot of the game at booking time; catalog edits do not rewrite
	// booking history.
	GameName     string
	PricePerHour float64

	ContactName  *string
	ContactPhone *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies its slot.
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsOvernight returns true if the interval wraps past midnight.
func (b *Booking) IsOvernight() bool {
	return !b.EndTime.IsAfter(b.StartTime)
}

// StartDateTime combines the booking date and start time into a concrete
// instant in loc. Used for the cancellation-deadline check.
func (b *Booking) StartDateTime(loc *time.Location) time.Time {
	minutes := b.StartTime.Minutes()
	return time.Date(
		b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		minutes/60, minutes%60, 0, 0, loc,
	)
}

// BookingsFilter is the admin-side listing filter. Nil fields are ignored.
type BookingsFilter struct {
	GameID          *int64
	UserID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // when false, only pending/confirmed rows are returned
}

// GameRevenue is one row of the revenue report: earnings from confirmed and
// completed bookings of a single game over the requested period.
type GameRevenue struct {
	GameID       int64
	GameName     string
	BookingCount int64
	TotalRevenue int64
}
