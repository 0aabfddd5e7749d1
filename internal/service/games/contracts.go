package games

import (
	"context"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// GameRepository is the storage interface for the catalog.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	Update(ctx context.Context, game *domain.Game) (*domain.Game, error)
	Delete(ctx context.Context, id int64) error
}

// RevenueRepository aggregates booking revenue per game.
type RevenueRepository interface {
	RevenueByGame(ctx context.Context, startDate, endDate time.Time) ([]domain.GameRevenue, error)
}

// Logger is the logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
