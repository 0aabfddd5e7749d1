package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedSlotDurations are the supported start/end time granularities in
// minutes.
var AllowedSlotDurations = []int{15, 30, 60}

// Settings validation bounds
const (
	MinAdvanceBookingDays = 1
	MaxAdvanceBookingDays = 30

	MinBookingDurationFloor = 0.5 // hours
	MinBookingDurationCeil  = 8.0
	MaxBookingDurationFloor = 1.0
	MaxBookingDurationCeil  = 12.0

	MinCancellationDeadlineHours = 0
	MaxCancellationDeadlineHours = 48
)

// Game validation bounds
const (
	MaxGameNameLength        = 100
	MaxGameDescriptionLength = 2000
	MaxNotesLength           = 500
)

const MinutesPerDay = 24 * 60

// ActiveStatuses are the statuses that occupy a time slot. Everything else is
// terminal and frees its interval implicitly by dropping out of this filter.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
