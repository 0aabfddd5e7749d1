package get_game

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type GameService interface {
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
