package games

import "errors"

var (
	// ErrGameNotFound is returned when the game does not exist.
	ErrGameNotFound = errors.New("games.service: game not found")

	// ErrAccessDenied is returned when a non-admin attempts a catalog change.
	ErrAccessDenied = errors.New("games.service: access denied")

	// ErrInvalidInput is returned when the game data fails validation.
	ErrInvalidInput = errors.New("games.service: invalid game data")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("games.service: internal error")
)
