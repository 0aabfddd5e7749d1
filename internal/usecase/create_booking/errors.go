package create_booking

import "errors"

var (
	// ErrGameNotFound is returned when the requested game does not exist.
	ErrGameNotFound = errors.New("create_booking.usecase: game not found")

	// ErrUserNotFound is returned when the user service has no such user.
	ErrUserNotFound = errors.New("create_booking.usecase: user not found")

	// ErrSlotConflict is returned when the requested interval overlaps an
	// active booking. Raised by the pre-check inside the transaction or, for
	// a race lost at commit, mapped from the storage constraint violation.
	ErrSlotConflict = errors.New("create_booking.usecase: slot already booked")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("create_booking.usecase: date is in the past")

	// ErrDateTooFar is returned when the date exceeds the advance booking
	// horizon.
	ErrDateTooFar = errors.New("create_booking.usecase: date exceeds the advance booking window")

	// ErrValidation is returned when the requested interval breaks a booking
	// rule: off-grid times, out-of-bounds duration, outside operating hours,
	// or an overnight interval without 24/7 operation.
	ErrValidation = errors.New("create_booking.usecase: booking validation failed")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking.usecase: invalid input data")

	// ErrInternal is returned for storage and infrastructure failures.
	ErrInternal = errors.New("create_booking.usecase: internal error")
)
