package settings

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// SettingsRepository is the storage interface for the singleton settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Update(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error)
}

// Logger is the logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
