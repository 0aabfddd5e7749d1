package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// BookingItem is one row of the admin listing, contact details included.
type BookingItem struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"userId"`
	GameID       int64   `json:"gameId"`
	GameName     string  `json:"gameName"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	TotalCost    int64   `json:"totalCost"`
	ContactName  *string `json:"contactName,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// ParseFilter reads the query-string filters for the admin listing.
func ParseFilter(query url.Values) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter
	filter.IncludeInactive = true

	if raw := query.Get("gameId"); raw != "" {
		gameID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.GameID = &gameID
	}

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, err
		}
		filter.UserID = &userID
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		status, err := domain.ParseBookingStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// FromDomain converts the booking list into the HTTP response.
func FromDomain(bookings []*domain.Booking) *ListBookingsResponse {
	items := make([]BookingItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, BookingItem{
			ID:           b.ID,
			UserID:       b.UserID,
			GameID:       b.GameID,
			GameName:     b.GameName,
			Date:         b.BookingDate.Format(domain.DateFormat),
			StartTime:    b.StartTime.String(),
			EndTime:      b.EndTime.String(),
			Status:       b.Status.String(),
			TotalCost:    b.TotalCost,
			ContactName:  b.ContactName,
			ContactPhone: b.ContactPhone,
			CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		})
	}

	return &ListBookingsResponse{
		Bookings: items,
		Total:    len(items),
	}
}
