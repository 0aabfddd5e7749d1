package game

import "errors"

var (
	// ErrGameNotFound is returned when no game matches the given id.
	ErrGameNotFound = errors.New("game.repository: game not found")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("game.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("game.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("game.repository: failed to scan row")
)
