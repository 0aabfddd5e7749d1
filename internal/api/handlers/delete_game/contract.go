package delete_game

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type GameService interface {
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
