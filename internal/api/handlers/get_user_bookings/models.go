package get_user_bookings

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// BookingItem is one row of the user's booking history.
type BookingItem struct {
	ID        int64  `json:"id"`
	GameID    int64  `json:"gameId"`
	GameName  string `json:"gameName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	TotalCost int64  `json:"totalCost"`
	CreatedAt string `json:"createdAt"`
}

// UserBookingsResponse HTTP response model
type UserBookingsResponse struct {
	UserID   int64         `json:"userId"`
	Bookings []BookingItem `json:"bookings"`
}

// FromDomain converts the booking list into the HTTP response.
func FromDomain(userID int64, bookings []*domain.Booking) *UserBookingsResponse {
	items := make([]BookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, BookingItem{
			ID:        b.ID,
			GameID:    b.GameID,
			GameName:  b.GameName,
			Date:      b.BookingDate.Format(domain.DateFormat),
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
			Status:    b.Status.String(),
			TotalCost: b.TotalCost,
			CreatedAt: b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &UserBookingsResponse{
		UserID:   userID,
		Bookings: items,
	}
}
