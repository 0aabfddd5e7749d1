package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	settingsRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/settings"
)

// Service owns the system settings: read on every booking attempt, updated
// only by admins.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates a settings service.
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (*domain.SystemSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("GetSettings: settings row missing")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return current, nil
}

// Update applies a partial settings change. Admin only. The patch is merged
// onto the current row, the merged result is validated as a whole (all rule
// violations collected), and only then written back in a single full-row
// update so no reader ever sees a partially applied change.
func (s *Service) Update(ctx context.Context, actor domain.Actor, patch domain.SettingsPatch) (*domain.SystemSettings, error) {
	if actor != domain.ActorAdmin {
		s.logger.Warn("UpdateSettings: rejected for non-admin actor=%s", actor)
		return nil, ErrAccessDenied
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("UpdateSettings: failed to read current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - read current settings: %v", ErrInternal, err)
	}

	merged := current.Apply(patch)

	if violations := ValidateSettings(&merged); len(violations) > 0 {
		s.logger.Warn("UpdateSettings: validation failed with %d violations", len(violations))
		return nil, &ValidationError{Messages: violations}
	}

	updated, err := s.settingsRepo.Update(ctx, &merged)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSettings: settings updated (slot=%dm, window=%s-%s, 24x7=%t, approval=%t)",
		updated.SlotDurationMinutes, updated.OpeningTime, updated.ClosingTime, updated.Is24x7, updated.RequireApproval)

	return updated, nil
}
