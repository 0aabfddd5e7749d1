package create_booking

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	createBooking "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req createBooking.Request) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
