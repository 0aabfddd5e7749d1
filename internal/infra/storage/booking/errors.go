package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict is returned when an insert violates the no-overlap
	// exclusion constraint: another active booking for the same game and date
	// already occupies part of the interval.
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
