package update_settings

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// UpdateSettingsRequest HTTP request model; omitted fields keep their current
// value.
type UpdateSettingsRequest struct {
	OpeningTime         *string  `json:"openingTime,omitempty"`
	ClosingTime         *string  `json:"closingTime,omitempty"`
	Is24x7              *bool    `json:"is24x7,omitempty"`
	AdvanceBookingDays  *int     `json:"advanceBookingDays,omitempty"`
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty"`
	MinBookingHours     *float64 `json:"minBookingHours,omitempty"`
	MaxBookingHours     *float64 `json:"maxBookingHours,omitempty"`
	CancellationHours   *int     `json:"cancellationHours,omitempty"`
	RequireApproval     *bool    `json:"requireApproval,omitempty"`
}

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

// ToPatch converts the HTTP request into a settings patch, parsing the time
// strings.
func (r *UpdateSettingsRequest) ToPatch() (domain.SettingsPatch, error) {
	patch := domain.SettingsPatch{
		Is24x7:              r.Is24x7,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		SlotDurationMinutes: r.SlotDurationMinutes,
		MinBookingHours:     r.MinBookingHours,
		MaxBookingHours:     r.MaxBookingHours,
		CancellationHours:   r.CancellationHours,
		RequireApproval:     r.RequireApproval,
	}

	if r.OpeningTime != nil {
		openingTime, err := types.NewTimeStringFromString(*r.OpeningTime)
		if err != nil {
			return domain.SettingsPatch{}, err
		}
		patch.OpeningTime = &openingTime
	}

	if r.ClosingTime != nil {
		closingTime, err := types.NewTimeStringFromString(*r.ClosingTime)
		if err != nil {
			return domain.SettingsPatch{}, err
		}
		patch.ClosingTime = &closingTime
	}

	return patch, nil
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
