package settings

import (
	"errors"
	"strings"
)

var (
	// ErrSettingsNotFound is returned when the settings row is absent.
	ErrSettingsNotFound = errors.New("settings.service: settings not found")

	// ErrAccessDenied is returned when a non-admin attempts an update.
	ErrAccessDenied = errors.New("settings.service: access denied")

	// ErrInternal is returned for storage failures.
	ErrInternal = errors.New("settings.service: internal error")
)

// ValidationError carries every violated settings rule as a human-readable
// message. Nothing is applied when validation fails; the caller shows the
// full list so the admin can fix all problems in one pass.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "settings.service: validation failed: " + strings.Join(e.Messages, "; ")
}
