package create_game

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type GameService interface {
	Create(ctx context.Context, actor domain.Actor, game *domain.Game) (*domain.Game, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
