package games

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	gameRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/game"
)

// Service manages the game catalog and the per-game revenue report. Reads
// are public; every mutation and the revenue report are admin only.
type Service struct {
	gameRepo    GameRepository
	revenueRepo RevenueRepository
	logger      Logger
}

// NewService creates a games service.
func NewService(gameRepository GameRepository, revenueRepository RevenueRepository, logger Logger) *Service {
	return &Service{
		gameRepo:    gameRepository,
		revenueRepo: revenueRepository,
		logger:      logger,
	}
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]*domain.Game, error) {
	games, err := s.gameRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListGames: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return games, nil
}

// GetByID returns one game.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		s.logger.Error("GetGame: repository error for game %d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return game, nil
}

// Create adds a game to the catalog. Admin only.
func (s *Service) Create(ctx context.Context, actor domain.Actor, game *domain.Game) (*domain.Game, error) {
	if actor != domain.ActorAdmin {
		return nil, ErrAccessDenied
	}

	if err := validateGame(game); err != nil {
		return nil, err
	}

	created, err := s.gameRepo.Create(ctx, game)
	if err != nil {
		s.logger.Error("CreateGame: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateGame: game %d %q created at %.2f/hour", created.ID, created.Name, created.PricePerHour)

	return created, nil
}

// Update applies a partial catalog change. Admin only. Bookings keep their
// price and name snapshot, so edits never rewrite history.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, patch domain.GamePatch) (*domain.Game, error) {
	if actor != domain.ActorAdmin {
		return nil, ErrAccessDenied
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := current.Apply(patch)
	if err := validateGame(&merged); err != nil {
		return nil, err
	}

	updated, err := s.gameRepo.Update(ctx, &merged)
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		s.logger.Error("UpdateGame: repository error for game %d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateGame: game %d updated", id)

	return updated, nil
}

// Delete removes a game from the catalog. Admin only. Existing bookings are
// preserved through their snapshot columns.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if actor != domain.ActorAdmin {
		return ErrAccessDenied
	}

	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return ErrGameNotFound
		}
		s.logger.Error("DeleteGame: repository error for game %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteGame: game %d removed from catalog", id)

	return nil
}

// Revenue returns per-game earnings from confirmed and completed bookings
// over [startDate, endDate]. Admin only.
func (s *Service) Revenue(ctx context.Context, actor domain.Actor, startDate, endDate time.Time) ([]domain.GameRevenue, error) {
	if actor != domain.ActorAdmin {
		return nil, ErrAccessDenied
	}

	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: period end before period start", ErrInvalidInput)
	}

	revenue, err := s.revenueRepo.RevenueByGame(ctx, startDate, endDate)
	if err != nil {
		s.logger.Error("GetRevenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Revenue - repository error: %v", ErrInternal, err)
	}

	return revenue, nil
}

func validateGame(game *domain.Game) error {
	name := strings.TrimSpace(game.Name)
	if name == "" {
		return fmt.Errorf("%w: game name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGameNameLength {
		return fmt.Errorf("%w: game name exceeds %d characters", ErrInvalidInput, domain.MaxGameNameLength)
	}
	if len(game.Description) > domain.MaxGameDescriptionLength {
		return fmt.Errorf("%w: game description exceeds %d characters", ErrInvalidInput, domain.MaxGameDescriptionLength)
	}
	if game.PricePerHour <= 0 {
		return fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
	}
	if game.MaxPlayers <= 0 {
		return fmt.Errorf("%w: max players must be positive", ErrInvalidInput)
	}
	return nil
}
