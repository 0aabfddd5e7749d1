package get_booking

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	GameID             int64   `json:"gameId"`
	GameName           string  `json:"gameName"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	TotalCost          int64   `json:"totalCost"`
	PricePerHour       float64 `json:"pricePerHour"`
	ContactName        *string `json:"contactName,omitempty"`
	ContactPhone       *string `json:"contactPhone,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromDomain converts a booking into the HTTP response.
func FromDomain(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		GameID:             b.GameID,
		GameName:           b.GameName,
		Date:               b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             b.Status.String(),
		TotalCost:          b.TotalCost,
		PricePerHour:       b.PricePerHour,
		ContactName:        b.ContactName,
		ContactPhone:       b.ContactPhone,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
