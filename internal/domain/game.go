package domain

import "time"

// Game is one bookable activity in the venue catalog (cricket net, badminton
// court, ...). Admin-owned; referenced by bookings via a price/name snapshot,
// so deleting a game leaves existing bookings untouched.
type Game struct {
	ID           int64
	Name         string
	Description  string
	PricePerHour float64
	MaxPlayers   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GamePatch is a partial game update; nil fields keep their current value.
type GamePatch struct {
	Name         *string
	Description  *string
	PricePerHour *float64
	MaxPlayers   *int
}

// Apply returns a copy of g with the non-nil patch fields applied.
func (g Game) Apply(patch GamePatch) Game {
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.PricePerHour != nil {
		g.PricePerHour = *patch.PricePerHour
	}
	if patch.MaxPlayers != nil {
		g.MaxPlayers = *patch.MaxPlayers
	}
	return g
}
