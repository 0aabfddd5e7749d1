package create_booking

import (
	"context"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/integrations/userservice"
)

// BookingRepository is the storage interface for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByGameAndDate(ctx context.Context, gameID int64, date time.Time) ([]*domain.Booking, error)
}

// GameRepository resolves the game being booked.
type GameRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
}

// SettingsRepository supplies the operating configuration.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

// UserServiceClient enriches the booking with contact details.
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.UserProfile, error)
}

// TxManager runs the conflict check and insert in one serializable
// transaction.
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the clock.
type TimeProvider interface {
	Now() time.Time
}

// Metrics counts booking outcomes.
type Metrics interface {
	IncBookingCreated(status string)
	IncBookingConflict()
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
