package create_booking

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// Request is one booking attempt: a user, a game, a date and an interval on
// the slot grid.
type Request struct {
	UserID    int64
	GameID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Notes     *string
}
