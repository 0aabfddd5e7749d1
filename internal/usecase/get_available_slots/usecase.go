package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	gameRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/game"
	settingsRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/settings"
)

// Usecase computes the available slots for one game on one date: the start
// grid from the operating settings, every legal end per start, conflicts
// removed, each surviving option priced.
type Usecase struct {
	bookingRepo  BookingRepository
	gameRepo     GameRepository
	settingsRepo SettingsRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase creates the slots usecase.
func NewUsecase(
	bookingRepository BookingRepository,
	gameRepository GameRepository,
	settingsRepository SettingsRepository,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:  bookingRepository,
		gameRepo:     gameRepository,
		settingsRepo: settingsRepository,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute returns the bookable slots for req.GameID on req.Date.
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Validate the request shape
	if req.GameID <= 0 {
		return nil, fmt.Errorf("%w: game id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := u.timeProvider.Now()

	// 2-5. Load settings, game and bookings from one read-only snapshot so a
	// concurrent create cannot slip between the reads
	var (
		settings *domain.SystemSettings
		game     *domain.Game
		bookings []*domain.Booking
	)
	err := u.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		// 2. Load the operating settings (defaults when the row is missing)
		settings, err = u.getSettings(txCtx)
		if err != nil {
			return err
		}

		// 3. Check the date against today and the advance horizon
		if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
			return err
		}

		// 4. Resolve the game for its hourly rate
		game, err = u.gameRepo.GetByID(txCtx, req.GameID)
		if err != nil {
			if errors.Is(err, gameRepo.ErrGameNotFound) {
				return ErrGameNotFound
			}
			u.logger.Error("GetAvailableSlots: failed to load game %d: %v", req.GameID, err)
			return fmt.Errorf("%w: Execute - load game: %v", ErrInternal, err)
		}

		// 5. Load the active bookings occupying slots on that date
		bookings, err = u.bookingRepo.GetActiveByGameAndDate(txCtx, req.GameID, req.Date)
		if err != nil {
			u.logger.Error("GetAvailableSlots: failed to load bookings for game %d on %s: %v",
				req.GameID, req.Date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: Execute - load bookings: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Build the grid, drop conflicts, price what survives
	slots := u.buildSlots(settings, game, bookings, req.Date, now)

	u.logger.Info("GetAvailableSlots: game %d date %s -> %d bookable starts",
		req.GameID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		GameID:              game.ID,
		GameName:            game.Name,
		PricePerHour:        game.PricePerHour,
		Date:                req.Date,
		SlotDurationMinutes: settings.SlotDurationMinutes,
		Slots:               slots,
	}, nil
}

func (u *Usecase) buildSlots(
	settings *domain.SystemSettings,
	game *domain.Game,
	bookings []*domain.Booking,
	date time.Time,
	now time.Time,
) []domain.AvailableSlot {
	isToday := sameDay(date, now)
	nowMinute := now.Hour()*60 + now.Minute()

	slots := make([]domain.AvailableSlot, 0)
	for _, start := range generateCandidateStartTimes(settings) {
		// Starts already behind the clock are not offered for today.
		if isToday && start.Minutes() <= nowMinute {
			continue
		}

		options := make([]domain.EndOption, 0)
		for _, candidate := range generateLegalEndTimes(start, settings) {
			interval := domain.Interval{Start: start, End: candidate.end}
			if domain.HasConflict(interval, bookings, nil) {
				continue
			}
			options = append(options, domain.EndOption{
				EndTime:         candidate.end,
				DurationMinutes: candidate.durationMinutes,
				Cost:            domain.CalculateCost(game.PricePerHour, start, candidate.end, settings.Is24x7),
			})
		}

		slot := domain.AvailableSlot{StartTime: start, EndOptions: options}
		if slot.IsBookable() {
			slots = append(slots, slot)
		}
	}
	return slots
}

func (u *Usecase) getSettings(ctx context.Context) (*domain.SystemSettings, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			u.logger.Warn("GetAvailableSlots: settings row missing, using defaults")
			return domain.DefaultSettings(), nil
		}
		u.logger.Error("GetAvailableSlots: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: getSettings - load settings: %v", ErrInternal, err)
	}
	return settings, nil
}

func validateDate(date, now time.Time, advanceDays int) error {
	today := truncateToDay(now)
	requested := truncateToDay(date)

	if requested.Before(today) {
		return ErrDateInPast
	}
	if requested.After(today.AddDate(0, 0, advanceDays)) {
		return fmt.Errorf("%w: bookings open %d days ahead", ErrDateTooFar, advanceDays)
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
