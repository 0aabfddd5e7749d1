package get_available_slots

import "errors"

var (
	// ErrGameNotFound is returned when the requested game does not exist.
	ErrGameNotFound = errors.New("get_available_slots.usecase: game not found")

	// ErrDateInPast is returned when the requested date is before today.
	ErrDateInPast = errors.New("get_available_slots.usecase: date is in the past")

	// ErrDateTooFar is returned when the date exceeds the advance booking
	// horizon.
	ErrDateTooFar = errors.New("get_available_slots.usecase: date exceeds the advance booking window")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots.usecase: invalid input data")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
