package cancel_booking

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type BookingService interface {
	Cancel(ctx context.Context, bookingID, requesterID int64, actor domain.Actor, reason string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
