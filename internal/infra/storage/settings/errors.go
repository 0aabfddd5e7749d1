package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when the settings row is absent
	// (normally impossible: the initial migration seeds it).
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when SQL query construction fails.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
