package update_booking_status

import (
	"context"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID int64, actor domain.Actor, newStatus domain.BookingStatus, reason *string) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
