package get_available_slots

import (
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// generateCandidateStartTimes builds the start-time grid for one day: every
// slot boundary from opening (inclusive) to closing (exclusive). Under 24/7
// operation the grid covers the whole day from midnight.
func generateCandidateStartTimes(settings *domain.SystemSettings) []types.TimeString {
	step := settings.SlotDurationMinutes
	opening := settings.OpeningMinute()
	closing := settings.ClosingMinute()

	starts := make([]types.TimeString, 0, (closing-opening)/step)
	for minute := opening; minute < closing; minute += step {
		starts = append(starts, types.MinutesToTimeString(minute))
	}
	return starts
}

// endCandidate is a grid-aligned end before pricing and conflict filtering.
type endCandidate struct {
	end             types.TimeString
	durationMinutes int
}

// generateLegalEndTimes lists every end on the slot grid whose duration from
// start satisfies the configured min/max bounds (inclusive on both ends).
// Outside 24/7 mode the interval must finish by closing time; under 24/7 the
// end may wrap past midnight, which is encoded as an end numerically <= the
// start.
func generateLegalEndTimes(start types.TimeString, settings *domain.SystemSettings) []endCandidate {
	step := settings.SlotDurationMinutes
	minMinutes := domain.HoursToMinutes(settings.MinBookingHours)
	maxMinutes := domain.HoursToMinutes(settings.MaxBookingHours)
	startMinute := start.Minutes()
	closing := settings.ClosingMinute()

	ends := make([]endCandidate, 0, maxMinutes/step)
	for duration := step; duration <= maxMinutes; duration += step {
		if duration < minMinutes {
			continue
		}

		endMinute := startMinute + duration
		if settings.Is24x7 {
			ends = append(ends, endCandidate{
				end:             types.MinutesToTimeString(endMinute % domain.MinutesPerDay),
				durationMinutes: duration,
			})
			continue
		}

		if endMinute > closing {
			break
		}
		ends = append(ends, endCandidate{
			end:             types.MinutesToTimeString(endMinute),
			durationMinutes: duration,
		})
	}
	return ends
}
