package get_available_slots

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// Request identifies the game and date to quote slots for.
type Request struct {
	GameID int64
	Date   time.Time
}

// Response carries the bookable slots plus the grid parameters they were
// generated from, so clients can render the picker without a second call.
type Response struct {
	GameID              int64
	GameName            string
	PricePerHour        float64
	Date                time.Time
	SlotDurationMinutes int
	Slots               []domain.AvailableSlot
}
