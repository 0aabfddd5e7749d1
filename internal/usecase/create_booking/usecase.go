package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	bookingRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/booking"
	gameRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/game"
	settingsRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/settings"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/integrations/userservice"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/txmanager"
)

// Usecase creates a booking: validates the interval against the operating
// settings, then checks for conflicts and inserts inside one serializable
// transaction so two clients cannot both book the same slot. The database
// exclusion constraint backs the in-transaction check as a final guarantee.
type Usecase struct {
	bookingRepo  BookingRepository
	gameRepo     GameRepository
	settingsRepo SettingsRepository
	userClient   UserServiceClient
	txManager    TxManager
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUsecase creates the booking creation usecase.
func NewUsecase(
	bookingRepository BookingRepository,
	gameRepository GameRepository,
	settingsRepository SettingsRepository,
	userClient UserServiceClient,
	txManager TxManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:  bookingRepository,
		gameRepo:     gameRepository,
		settingsRepo: settingsRepository,
		userClient:   userClient,
		txManager:    txManager,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute books the requested interval for req.UserID.
func (u *Usecase) Execute(ctx context.Context, req Request) (*domain.Booking, error) {
	// 1. Validate the request shape
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()

	// 2. Load the operating settings (defaults when the row is missing)
	settings, err := u.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Check the date and the interval against the settings
	if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
		return nil, err
	}
	if err := validateInterval(req, settings); err != nil {
		return nil, err
	}

	// 4. Resolve the game for the price snapshot
	game, err := u.gameRepo.GetByID(ctx, req.GameID)
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		u.logger.Error("CreateBooking: failed to load game %d: %v", req.GameID, err)
		return nil, fmt.Errorf("%w: Execute - load game: %v", ErrInternal, err)
	}

	// 5. Fetch the user's contact details; a degraded user service does not
	//    block the booking
	profile, err := u.userClient.GetUserWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		u.logger.Warn("CreateBooking: proceeding without contact details for user %d: %v", req.UserID, err)
		profile = nil
	}

	booking := u.buildBooking(req, settings, game, profile)

	// 6. Conflict check and insert in one serializable transaction. The row
	//    read locks existing bookings; the exclusion constraint catches any
	//    race the pre-check cannot see.
	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := u.bookingRepo.GetActiveByGameAndDate(txCtx, req.GameID, req.Date)
		if err != nil {
			return fmt.Errorf("%w: Execute - load active bookings: %v", ErrInternal, err)
		}

		candidate := domain.Interval{Start: req.StartTime, End: req.EndTime}
		if domain.HasConflict(candidate, existing, nil) {
			return ErrSlotConflict
		}

		created, err := u.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				return ErrSlotConflict
			}
			return fmt.Errorf("%w: Execute - insert booking: %v", ErrInternal, err)
		}

		booking = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) || errors.Is(err, txmanager.ErrSerialization) {
			u.metrics.IncBookingConflict()
			u.logger.Info("CreateBooking: slot conflict for game %d on %s %s-%s",
				req.GameID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotConflict
		}
		if errors.Is(err, ErrInternal) {
			u.logger.Error("CreateBooking: %v", err)
			return nil, err
		}
		u.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	u.metrics.IncBookingCreated(booking.Status.String())
	u.logger.Info("CreateBooking: booking %d created for user %d, game %d on %s %s-%s, cost %d, status %s",
		booking.ID, booking.UserID, booking.GameID, booking.BookingDate.Format(domain.DateFormat),
		booking.StartTime, booking.EndTime, booking.TotalCost, booking.Status)

	return booking, nil
}

// buildBooking assembles the row to insert: price and name are snapshotted
// from the game, contact details from the profile when available, the cost is
// computed once and the initial status follows the approval policy.
func (u *Usecase) buildBooking(
	req Request,
	settings *domain.SystemSettings,
	game *domain.Game,
	profile *userservice.UserProfile,
) *domain.Booking {
	booking := &domain.Booking{
		UserID:       req.UserID,
		GameID:       game.ID,
		BookingDate:  truncateToDay(req.Date),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       settings.InitialBookingStatus(),
		TotalCost:    domain.CalculateCost(game.PricePerHour, req.StartTime, req.EndTime, settings.Is24x7),
		GameName:     game.Name,
		PricePerHour: game.PricePerHour,
		Notes:        req.Notes,
	}

	if profile != nil {
		booking.ContactName = &profile.Name
		booking.ContactPhone = &profile.Phone
	}

	return booking
}

func (u *Usecase) getSettings(ctx context.Context) (*domain.SystemSettings, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			u.logger.Warn("CreateBooking: settings row missing, using defaults")
			return domain.DefaultSettings(), nil
		}
		u.logger.Error("CreateBooking: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: getSettings - load settings: %v", ErrInternal, err)
	}
	return settings, nil
}
