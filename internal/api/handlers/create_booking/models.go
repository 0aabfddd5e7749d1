package create_booking

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	createBooking "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/create_booking"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GameID    int64   `json:"gameId"`
	Date      string  `json:"date"`      // "2026-03-15"
	StartTime string  `json:"startTime"` // "14:00"
	EndTime   string  `json:"endTime"`   // "15:30"
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	GameID       int64   `json:"gameId"`
	GameName     string  `json:"gameName"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	TotalCost    int64   `json:"totalCost"`
	PricePerHour float64 `json:"pricePerHour"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model, parsing
// the date and times.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return createBooking.Request{}, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return createBooking.Request{}, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		UserID:    userID,
		GameID:    r.GameID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
}

// FromDomain converts a booking into the HTTP response.
func FromDomain(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		GameID:       b.GameID,
		GameName:     b.GameName,
		Date:         b.BookingDate.Format(domain.DateFormat),
		StartTime:    b.StartTime.String(),
		EndTime:      b.EndTime.String(),
		Status:       b.Status.String(),
		TotalCost:    b.TotalCost,
		PricePerHour: b.PricePerHour,
		ContactName:  b.ContactName,
		ContactPhone: b.ContactPhone,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
