package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied is returned when the requester may not act on the
	// booking (not the owner and not an admin).
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInvalidTransition is returned when the requested status change is
	// not permitted for the actor and current state. No state change occurs.
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrCancellationDeadline is returned when a user tries to cancel a
	// confirmed booking closer to its start than the configured deadline.
	ErrCancellationDeadline = errors.New("bookings.service: cancellation deadline passed")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("bookings.service: internal error")
)
