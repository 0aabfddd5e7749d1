package domain

import "github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"

// EndOption is one legal end time for a chosen start, with the quoted price.
type EndOption struct {
	EndTime         types.TimeString
	DurationMinutes int
	Cost            int64
}

// AvailableSlot is a candidate start time together with every conflict-free
// end choice satisfying the configured duration bounds.
type AvailableSlot struct {
	StartTime  types.TimeString
	EndOptions []EndOption
}

// IsBookable returns true if at least one end choice survives filtering.
func (s *AvailableSlot) IsBookable() bool {
	return len(s.EndOptions) > 0
}
