package get_revenue

import (
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// GameRevenueItem is one row of the revenue report.
type GameRevenueItem struct {
	GameID       int64  `json:"gameId"`
	GameName     string `json:"gameName"`
	BookingCount int64  `json:"bookingCount"`
	TotalRevenue int64  `json:"totalRevenue"`
}

// RevenueResponse HTTP response model
type RevenueResponse struct {
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	Games        []GameRevenueItem `json:"games"`
	TotalRevenue int64             `json:"totalRevenue"`
}

// FromDomain converts the revenue rows into the HTTP response.
func FromDomain(startDate, endDate string, rows []domain.GameRevenue) *RevenueResponse {
	items := make([]GameRevenueItem, 0, len(rows))
	var total int64
	for _, row := range rows {
		items = append(items, GameRevenueItem{
			GameID:       row.GameID,
			GameName:     row.GameName,
			BookingCount: row.BookingCount,
			TotalRevenue: row.TotalRevenue,
		})
		total += row.TotalRevenue
	}

	return &RevenueResponse{
		StartDate:    startDate,
		EndDate:      endDate,
		Games:        items,
		TotalRevenue: total,
	}
}
