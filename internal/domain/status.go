package domain

import "fmt"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
	StatusNoShow    BookingStatus = "no_show"
	StatusCompleted BookingStatus = "completed"
)

// Actor identifies who is requesting a status transition. Users may only act
// on their own bookings; the ownership check belongs to the caller.
type Actor string

const (
	ActorUser  Actor = "user"
	ActorAdmin Actor = "admin"
)

// transitions is the complete lifecycle table per actor. Any (actor, from,
// to) triple not listed here is an invalid transition; there is no other
// place in the codebase that decides status changes.
var transitions = map[Actor]map[BookingStatus][]BookingStatus{
	ActorUser: {
		StatusPending:   {StatusCanceled},
		StatusConfirmed: {StatusCanceled}, // subject to the cancellation deadline, enforced by the caller with a clock
	},
	ActorAdmin: {
		StatusPending:   {StatusConfirmed, StatusCanceled},
		StatusConfirmed: {StatusCompleted, StatusNoShow, StatusCanceled},
	},
}

// ParseBookingStatus converts a string to a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", s)
	}
	return status, nil
}

// ParseActor converts a string to an Actor.
func ParseActor(s string) (Actor, error) {
	switch Actor(s) {
	case ActorUser:
		return ActorUser, nil
	case ActorAdmin:
		return ActorAdmin, nil
	default:
		return "", fmt.Errorf("invalid actor role: %q", s)
	}
}

// IsValid returns true if the status is one of the recognized states.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive returns true if the status occupies a time slot for conflict
// purposes.
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true if no actor may transition out of the status.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCanceled || s == StatusNoShow || s == StatusCompleted
}

// CanTransition reports whether actor may move a booking from one status to
// another according to the lifecycle table.
func CanTransition(actor Actor, from, to BookingStatus) bool {
	allowed, ok := transitions[actor][from]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}
