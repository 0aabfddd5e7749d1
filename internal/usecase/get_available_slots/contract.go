package get_available_slots

import (
	"context"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// BookingRepository supplies the active bookings that occupy slots.
type BookingRepository interface {
	GetActiveByGameAndDate(ctx context.Context, gameID int64, date time.Time) ([]*domain.Booking, error)
}

// GameRepository resolves the requested game and its hourly rate.
type GameRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
}

// SettingsRepository supplies the operating configuration driving the grid.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

// TxManager provides the read-only snapshot the availability reads run in,
// so settings, game and bookings reflect one consistent database state.
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock so tests can pin "today".
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the usecase needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
