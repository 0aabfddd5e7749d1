package domain

import "github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"

// Interval is a candidate [start, end) wall-clock window on one date.
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// Overlaps reports whether two same-date intervals overlap. Comparison is
// lexicographic, which is order-preserving for zero-padded HH:MM strings.
// Strict inequalities: intervals that merely touch at a boundary (one ends at
// 10:00, the other starts at 10:00) do NOT overlap.
//
// Overnight intervals (end <= start) are normalized by pushing the end past
// midnight before comparing, the same mapping the database exclusion
// constraint applies, so 23:00-05:00 conflicts with 23:30-00:30 but not with
// 21:00-23:00. Both intervals are anchored to the same calendar date.
func (i Interval) Overlaps(other Interval) bool {
	s1, e1 := i.minutes()
	s2, e2 := other.minutes()
	return s1 < e2 && s2 < e1
}

func (i Interval) minutes() (start, end int) {
	start = i.Start.Minutes()
	end = i.End.Minutes()
	if end <= start {
		end += MinutesPerDay
	}
	return start, end
}

// HasConflict reports whether the candidate interval overlaps any active
// (pending or confirmed) booking in the list. excludeID, when non-nil, skips
// that booking so edit/reschedule flows do not collide with themselves.
//
// The predicate tolerates no false negatives: any degree of overlap,
// including exact containment, is a conflict.
func HasConflict(candidate Interval, bookings []*Booking, excludeID *int64) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if candidate.Overlaps(Interval{Start: b.StartTime, End: b.EndTime}) {
			return true
		}
	}
	return false
}
