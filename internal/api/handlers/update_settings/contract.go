package update_settings

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type SettingsService interface {
	Update(ctx context.Context, actor domain.Actor, patch domain.SettingsPatch) (*domain.SystemSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
