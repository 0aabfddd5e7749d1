package get_revenue

import (
	"context"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type GameService interface {
	Revenue(ctx context.Context, actor domain.Actor, startDate, endDate time.Time) ([]domain.GameRevenue, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
