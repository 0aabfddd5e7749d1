package domain

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// SystemSettings is the single admin-owned operating configuration read by
// every booking attempt. It lives in one database row; updates replace the
// whole row so readers never observe a mix of old and new fields.
type SystemSettings struct {
	ID                  int64
	OpeningTime         types.TimeString
	ClosingTime         types.TimeString
	Is24x7              bool // when true the venue never closes and overnight intervals wrap past midnight
	AdvanceBookingDays  int
	SlotDurationMinutes int
	MinBookingHours     float64 // may be fractional (0.5 steps)
	MaxBookingHours     float64
	CancellationHours   int // hours before start after which users cannot cancel
	RequireApproval     bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SettingsPatch is a partial settings update; nil fields keep their current
// value. Validation runs on the merged result, never on the patch alone.
type SettingsPatch struct {
	OpeningTime         *types.TimeString
	ClosingTime         *types.TimeString
	Is24x7              *bool
	AdvanceBookingDays  *int
	SlotDurationMinutes *int
	MinBookingHours     *float64
	MaxBookingHours     *float64
	CancellationHours   *int
	RequireApproval     *bool
}

// DefaultSettings mirrors the values seeded by the initial migration.
func DefaultSettings() *SystemSettings {
	return &SystemSettings{
		ID:                  1,
		OpeningTime:         "06:00",
		ClosingTime:         "22:00",
		Is24x7:              false,
		AdvanceBookingDays:  7,
		SlotDurationMinutes: 30,
		MinBookingHours:     1,
		MaxBookingHours:     4,
		CancellationHours:   2,
		RequireApproval:     true,
	}
}

// Apply returns a copy of s with the non-nil patch fields applied.
func (s SystemSettings) Apply(patch SettingsPatch) SystemSettings {
	if patch.OpeningTime != nil {
		s.OpeningTime = *patch.OpeningTime
	}
	if patch.ClosingTime != nil {
		s.ClosingTime = *patch.ClosingTime
	}
	if patch.Is24x7 != nil {
		s.Is24x7 = *patch.Is24x7
	}
	if patch.AdvanceBookingDays != nil {
		s.AdvanceBookingDays = *patch.AdvanceBookingDays
	}
	if patch.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *patch.SlotDurationMinutes
	}
	if patch.MinBookingHours != nil {
		s.MinBookingHours = *patch.MinBookingHours
	}
	if patch.MaxBookingHours != nil {
		s.MaxBookingHours = *patch.MaxBookingHours
	}
	if patch.CancellationHours != nil {
		s.CancellationHours = *patch.CancellationHours
	}
	if patch.RequireApproval != nil {
		s.RequireApproval = *patch.RequireApproval
	}
	return s
}

// OpeningMinute returns the first bookable minute of the day.
func (s *SystemSettings) OpeningMinute() int {
	if s.Is24x7 {
		return 0
	}
	return s.OpeningTime.Minutes()
}

// ClosingMinute returns the exclusive last minute of the operating window.
func (s *SystemSettings) ClosingMinute() int {
	if s.Is24x7 {
		return MinutesPerDay
	}
	return s.ClosingTime.Minutes()
}

// InitialBookingStatus returns the status a freshly created booking starts
// in, depending on the approval policy.
func (s *SystemSettings) InitialBookingStatus() BookingStatus {
	if s.RequireApproval {
		return StatusPending
	}
	return StatusConfirmed
}
