package userservice

import "errors"

var (
	// ErrUserNotFound is returned when the user service has no such user.
	ErrUserNotFound = errors.New("userservice: user not found")

	// ErrInvalidResponse is returned on unexpected status codes or bodies.
	ErrInvalidResponse = errors.New("userservice: invalid response")

	// ErrServiceDegraded is returned when the user service is unreachable.
	// Booking creation proceeds without contact details in that case.
	ErrServiceDegraded = errors.New("userservice: service degraded")

	// ErrInternal is returned for request construction/transport failures.
	ErrInternal = errors.New("userservice: internal error")
)
