package get_available_slots

import (
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	getAvailableSlots "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/get_available_slots"
)

// EndOptionItem is one legal end choice with its quoted price.
type EndOptionItem struct {
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Cost            int64  `json:"cost"`
}

// SlotItem is one bookable start with its end choices.
type SlotItem struct {
	StartTime  string          `json:"startTime"`
	EndOptions []EndOptionItem `json:"endOptions"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	GameID              int64      `json:"gameId"`
	GameName            string     `json:"gameName"`
	PricePerHour        float64    `json:"pricePerHour"`
	Date                string     `json:"date"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	Slots               []SlotItem `json:"slots"`
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotItem, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		options := make([]EndOptionItem, 0, len(slot.EndOptions))
		for _, option := range slot.EndOptions {
			options = append(options, EndOptionItem{
				EndTime:         option.EndTime.String(),
				DurationMinutes: option.DurationMinutes,
				Cost:            option.Cost,
			})
		}
		slots = append(slots, SlotItem{
			StartTime:  slot.StartTime.String(),
			EndOptions: options,
		})
	}

	return &AvailableSlotsResponse{
		GameID:              resp.GameID,
		GameName:            resp.GameName,
		PricePerHour:        resp.PricePerHour,
		Date:                resp.Date.Format(domain.DateFormat),
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}
