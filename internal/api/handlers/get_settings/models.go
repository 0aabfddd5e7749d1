package get_settings

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	OpeningTime         string  `json:"openingTime"`
	ClosingTime         string  `json:"closingTime"`
	Is24x7              bool    `json:"is24x7"`
	AdvanceBookingDays  int     `json:"advanceBookingDays"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	MinBookingHours     float64 `json:"minBookingHours"`
	MaxBookingHours     float64 `json:"maxBookingHours"`
	CancellationHours   int     `json:"cancellationHours"`
	RequireApproval     bool    `json:"requireApproval"`
	UpdatedAt           string  `json:"updatedAt"`
}

// FromDomain converts the settings into the HTTP response.
func FromDomain(s *domain.SystemSettings) *SettingsResponse {
	return &SettingsResponse{
		OpeningTime:         s.OpeningTime.String(),
		ClosingTime:         s.ClosingTime.String(),
		Is24x7:              s.Is24x7,
		AdvanceBookingDays:  s.AdvanceBookingDays,
		SlotDurationMinutes: s.SlotDurationMinutes,
		MinBookingHours:     s.MinBookingHours,
		MaxBookingHours:     s.MaxBookingHours,
		CancellationHours:   s.CancellationHours,
		RequireApproval:     s.RequireApproval,
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}
