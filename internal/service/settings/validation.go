package settings

import (
	"fmt"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// ValidateSettings checks the merged settings against every business rule
// and returns ALL violations, not just the first. A pure function: it never
// touches storage and never panics on bad input.
func ValidateSettings(s *domain.SystemSettings) []string {
	errs := make([]string, 0)

	if !s.Is24x7 {
		openErr := s.OpeningTime.Validate()
		closeErr := s.ClosingTime.Validate()
		if openErr != nil {
			errs = append(errs, "opening time must be a valid HH:MM value")
		}
		if closeErr != nil {
			errs = append(errs, "closing time must be a valid HH:MM value")
		}
		if openErr == nil && closeErr == nil && s.OpeningTime.Minutes() >= s.ClosingTime.Minutes() {
			errs = append(errs, "opening time must be before closing time")
		}
	}

	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		errs = append(errs, fmt.Sprintf("advance booking days must be between %d and %d",
			domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays))
	}

	if !isAllowedSlotDuration(s.SlotDurationMinutes) {
		errs = append(errs, "booking slot duration must be 15, 30 or 60 minutes")
	}

	if s.MinBookingHours < domain.MinBookingDurationFloor || s.MinBookingHours > domain.MinBookingDurationCeil {
		errs = append(errs, fmt.Sprintf("minimum booking duration must be between %.1f and %.0f hours",
			domain.MinBookingDurationFloor, domain.MinBookingDurationCeil))
	}

	if s.MaxBookingHours < domain.MaxBookingDurationFloor || s.MaxBookingHours > domain.MaxBookingDurationCeil {
		errs = append(errs, fmt.Sprintf("maximum booking duration must be between %.0f and %.0f hours",
			domain.MaxBookingDurationFloor, domain.MaxBookingDurationCeil))
	}

	if s.MinBookingHours >= s.MaxBookingHours {
		errs = append(errs, "minimum booking duration must be less than maximum booking duration")
	}

	if s.CancellationHours < domain.MinCancellationDeadlineHours || s.CancellationHours > domain.MaxCancellationDeadlineHours {
		errs = append(errs, fmt.Sprintf("cancellation deadline must be between %d and %d hours",
			domain.MinCancellationDeadlineHours, domain.MaxCancellationDeadlineHours))
	}

	return errs
}

func isAllowedSlotDuration(minutes int) bool {
	for _, d := range domain.AllowedSlotDurations {
		if minutes == d {
			return true
		}
	}
	return false
}
