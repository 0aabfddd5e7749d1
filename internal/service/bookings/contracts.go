package bookings

import (
	"context"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// BookingRepository is the storage interface for bookings.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// SettingsRepository supplies the cancellation deadline.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
}

// TimeProvider abstracts the clock for deadline checks (swapped in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the service needs.
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
