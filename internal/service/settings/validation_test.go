package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

func validSettings() *domain.SystemSettings {
	return &domain.SystemSettings{
		OpeningTime:         "06:00",
		ClosingTime:         "22:00",
		Is24x7:              false,
		AdvanceBookingDays:  7,
		SlotDurationMinutes: 30,
		MinBookingHours:     1,
		MaxBookingHours:     4,
		CancellationHours:   2,
	}
}

func TestValidateSettingsAccepted(t *testing.T) {
	assert.Empty(t, ValidateSettings(validSettings()))
}

func TestValidateSettingsSingleViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.SystemSettings)
		message string
	}{
		{
			"opening after closing",
			func(s *domain.SystemSettings) { s.OpeningTime = "22:00"; s.ClosingTime = "06:00" },
			"opening time must be before closing time",
		},
		{
			"opening equals closing",
			func(s *domain.SystemSettings) { s.OpeningTime = "10:00"; s.ClosingTime = "10:00" },
			"opening time must be before closing time",
		},
		{
			"advance days too low",
			func(s *domain.SystemSettings) { s.AdvanceBookingDays = 0 },
			"advance booking days must be between 1 and 30",
		},
		{
			"advance days too high",
			func(s *domain.SystemSettings) { s.AdvanceBookingDays = 31 },
			"advance booking days must be between 1 and 30",
		},
		{
			"unsupported slot duration",
			func(s *domain.SystemSettings) { s.SlotDurationMinutes = 45 },
			"booking slot duration must be 15, 30 or 60 minutes",
		},
		{
			"min duration below floor",
			func(s *domain.SystemSettings) { s.MinBookingHours = 0.25 },
			"minimum booking duration must be between 0.5 and 8 hours",
		},
		{
			"max duration above ceiling",
			func(s *domain.SystemSettings) { s.MaxBookingHours = 13 },
			"maximum booking duration must be between 1 and 12 hours",
		},
		{
			"cancellation deadline above ceiling",
			func(s *domain.SystemSettings) { s.CancellationHours = 49 },
			"cancellation deadline must be between 0 and 48 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)
			violations := ValidateSettings(s)
			assert.Contains(t, violations, tt.message)
		})
	}
}

func TestValidateSettingsCollectsAllViolations(t *testing.T) {
	s := validSettings()
	s.OpeningTime = "23:00"
	s.ClosingTime = "08:00"
	s.AdvanceBookingDays = 100
	s.SlotDurationMinutes = 7
	s.CancellationHours = -1

	violations := ValidateSettings(s)
	assert.Len(t, violations, 4, "every violated rule must be reported, not just the first")
}

func TestValidateSettingsMinMaxOrdering(t *testing.T) {
	s := validSettings()
	s.MinBookingHours = 4
	s.MaxBookingHours = 4

	violations := ValidateSettings(s)
	assert.Contains(t, violations, "minimum booking duration must be less than maximum booking duration")
}

func TestValidateSettings24x7IgnoresOperatingWindow(t *testing.T) {
	s := validSettings()
	s.Is24x7 = true
	s.OpeningTime = "22:00"
	s.ClosingTime = "06:00" // inverted, but irrelevant under 24/7

	assert.Empty(t, ValidateSettings(s))
}

func TestValidateSettingsHalfHourBoundsInclusive(t *testing.T) {
	s := validSettings()
	s.MinBookingHours = 0.5
	s.MaxBookingHours = 12

	assert.Empty(t, ValidateSettings(s), "equality at the documented bounds is allowed")
}
