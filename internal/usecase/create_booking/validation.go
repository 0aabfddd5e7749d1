package create_booking

import (
	"fmt"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

func validateRequest(req Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.GameID <= 0 {
		return fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

func validateDate(date, now time.Time, advanceDays int) error {
	today := truncateToDay(now)
	requested := truncateToDay(date)

	if requested.Before(today) {
		return ErrDateInPast
	}
	if requested.After(today.AddDate(0, 0, advanceDays)) {
		return fmt.Errorf("%w: bookings open %d days ahead", ErrDateTooFar, advanceDays)
	}
	return nil
}

// validateInterval checks the requested [start, end) against the operating
// settings: grid alignment, duration bounds, operating-window containment and
// the overnight rule.
func validateInterval(req Request, settings *domain.SystemSettings) error {
	step := settings.SlotDurationMinutes
	startMinute := req.StartTime.Minutes()
	opening := settings.OpeningMinute()
	closing := settings.ClosingMinute()

	duration := domain.IntervalMinutes(req.StartTime, req.EndTime, settings.Is24x7)
	if duration <= 0 {
		// Only 24/7 operation wraps past midnight; anywhere else an end at
		// or before the start is meaningless.
		return fmt.Errorf("%w: end time must be after start time (overnight intervals need 24/7 operation)", ErrValidation)
	}

	if (startMinute-opening)%step != 0 {
		return fmt.Errorf("%w: start time must fall on the %d-minute slot grid", ErrValidation, step)
	}
	if duration%step != 0 {
		return fmt.Errorf("%w: end time must fall on the %d-minute slot grid", ErrValidation, step)
	}

	minMinutes := domain.HoursToMinutes(settings.MinBookingHours)
	maxMinutes := domain.HoursToMinutes(settings.MaxBookingHours)
	if duration < minMinutes {
		return fmt.Errorf("%w: booking must last at least %.1f hours", ErrValidation, settings.MinBookingHours)
	}
	if duration > maxMinutes {
		return fmt.Errorf("%w: booking must not exceed %.1f hours", ErrValidation, settings.MaxBookingHours)
	}

	if !settings.Is24x7 {
		if startMinute < opening {
			return fmt.Errorf("%w: start time is before opening (%s)", ErrValidation, settings.OpeningTime)
		}
		if startMinute+duration > closing {
			return fmt.Errorf("%w: end time is after closing (%s)", ErrValidation, settings.ClosingTime)
		}
	}

	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
