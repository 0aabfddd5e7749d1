package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	bookingRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/infra/storage/settings"
)

// Service handles booking reads and lifecycle transitions. Creation lives in
// its own usecase because of the conflict-checking transaction; everything
// after creation goes through here.
type Service struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service.
func NewService(
	bookingRepository BookingRepository,
	settingsRepository SettingsRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepository,
		settingsRepo: settingsRepository,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID returns a single booking. Users may only read their own bookings;
// admins may read any.
func (s *Service) GetByID(ctx context.Context, bookingID, requesterID int64, actor domain.Actor) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actor != domain.ActorAdmin && booking.UserID != requesterID {
		s.logger.Warn("GetBooking: user %d denied access to booking %d owned by %d",
			requesterID, bookingID, booking.UserID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// GetUserBookings returns the bookings of one user, optionally filtered by
// status. A non-admin requester may only list their own bookings.
func (s *Service) GetUserBookings(ctx context.Context, userID, requesterID int64, actor domain.Actor, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if actor != domain.ActorAdmin && userID != requesterID {
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// List returns bookings matching the filter. Admin only.
func (s *Service) List(ctx context.Context, actor domain.Actor, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if actor != domain.ActorAdmin {
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Cancel moves a booking to canceled on behalf of the given actor. Users may
// cancel their own pending bookings freely; canceling a confirmed booking is
// additionally gated by the cancellation deadline from the system settings.
// Admins may cancel any pending or confirmed booking at any time.
func (s *Service) Cancel(ctx context.Context, bookingID, requesterID int64, actor domain.Actor, reason string) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if actor != domain.ActorAdmin && booking.UserID != requesterID {
		s.logger.Warn("CancelBooking: user %d denied access to booking %d owned by %d",
			requesterID, bookingID, booking.UserID)
		return nil, ErrAccessDenied
	}

	if !domain.CanTransition(actor, booking.Status, domain.StatusCanceled) {
		s.logger.Warn("CancelBooking: %s may not cancel booking %d in status %s",
			actor, bookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot cancel booking in status %s", ErrInvalidTransition, booking.Status)
	}

	if actor == domain.ActorUser && booking.Status == domain.StatusConfirmed {
		if err := s.checkCancellationDeadline(ctx, booking); err != nil {
			return nil, err
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("CancelBooking: repository error for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelBooking: booking %d canceled by %s %d", bookingID, actor, requesterID)

	return s.getBooking(ctx, bookingID)
}

// UpdateStatus applies an admin lifecycle transition: approve (confirmed),
// complete, mark no-show, or reject (canceled). The transition table is the
// single authority on what is allowed; an invalid request changes nothing.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, actor domain.Actor, newStatus domain.BookingStatus, reason *string) (*domain.Booking, error) {
	if actor != domain.ActorAdmin {
		return nil, ErrAccessDenied
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(domain.ActorAdmin, booking.Status, newStatus) {
		s.logger.Warn("UpdateBookingStatus: transition %s -> %s rejected for booking %d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if newStatus == domain.StatusCanceled {
		// Rejection goes through the cancel path so the reason and
		// cancellation timestamp are recorded.
		cancelReason := ""
		if reason != nil {
			cancelReason = *reason
		}
		err = s.bookingRepo.Cancel(ctx, bookingID, cancelReason)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	}
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateBookingStatus: repository error for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBookingStatus: booking %d moved %s -> %s", bookingID, booking.Status, newStatus)

	return s.getBooking(ctx, bookingID)
}

// checkCancellationDeadline rejects user cancellation of a confirmed booking
// when less than the configured number of hours remains before its start.
func (s *Service) checkCancellationDeadline(ctx context.Context, booking *domain.Booking) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			settings = domain.DefaultSettings()
		} else {
			s.logger.Error("CancelBooking: failed to read settings: %v", err)
			return fmt.Errorf("%w: checkCancellationDeadline - read settings: %v", ErrInternal, err)
		}
	}

	now := s.timeProvider.Now()
	start := booking.StartDateTime(now.Location())
	deadline := time.Duration(settings.CancellationHours) * time.Hour

	if start.Sub(now) <= deadline {
		s.logger.Warn("CancelBooking: booking %d starts at %s, within the %dh deadline",
			booking.ID, start.Format(time.RFC3339), settings.CancellationHours)
		return fmt.Errorf("%w: confirmed bookings must be canceled more than %d hours before start",
			ErrCancellationDeadline, settings.CancellationHours)
	}

	return nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: getBooking - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}
