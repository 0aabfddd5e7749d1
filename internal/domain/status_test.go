package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionAdmin(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"approve pending", StatusPending, StatusConfirmed, true},
		{"reject pending", StatusPending, StatusCanceled, true},
		{"complete confirmed", StatusConfirmed, StatusCompleted, true},
		{"mark no-show", StatusConfirmed, StatusNoShow, true},
		{"cancel confirmed", StatusConfirmed, StatusCanceled, true},
		{"reopen completed", StatusCompleted, StatusConfirmed, false},
		{"reopen canceled", StatusCanceled, StatusPending, false},
		{"reopen no-show", StatusNoShow, StatusConfirmed, false},
		{"complete pending directly", StatusPending, StatusCompleted, false},
		{"no-show pending directly", StatusPending, StatusNoShow, false},
		{"self transition", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(ActorAdmin, tt.from, tt.to))
		})
	}
}

func TestCanTransitionUser(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"cancel pending", StatusPending, StatusCanceled, true},
		{"cancel confirmed", StatusConfirmed, StatusCanceled, true},
		{"approve own pending", StatusPending, StatusConfirmed, false},
		{"complete own booking", StatusConfirmed, StatusCompleted, false},
		{"cancel completed", StatusCompleted, StatusCanceled, false},
		{"cancel canceled", StatusCanceled, StatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(ActorUser, tt.from, tt.to))
		})
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	terminal := []BookingStatus{StatusCanceled, StatusNoShow, StatusCompleted}
	all := []BookingStatus{StatusPending, StatusConfirmed, StatusCanceled, StatusNoShow, StatusCompleted}

	for _, from := range terminal {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, CanTransition(ActorAdmin, from, to), "admin %s -> %s must be rejected", from, to)
			assert.False(t, CanTransition(ActorUser, from, to), "user %s -> %s must be rejected", from, to)
		}
	}
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCanceled.IsActive())
	assert.False(t, StatusNoShow.IsActive())
	assert.False(t, StatusCompleted.IsActive())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseBookingStatus("approved")
	assert.Error(t, err)

	_, err = ParseBookingStatus("")
	assert.Error(t, err)
}

func TestParseActor(t *testing.T) {
	actor, err := ParseActor("admin")
	assert.NoError(t, err)
	assert.Equal(t, ActorAdmin, actor)

	_, err = ParseActor("superuser")
	assert.Error(t, err)
}
