package list_games

import (
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// GameItem is one catalog entry.
type GameItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	MaxPlayers   int     `json:"maxPlayers"`
}

// ListGamesResponse HTTP response model
type ListGamesResponse struct {
	Games []GameItem `json:"games"`
}

// FromDomain converts the catalog into the HTTP response.
func FromDomain(games []*domain.Game) *ListGamesResponse {
	items := make([]GameItem, 0, len(games))
	for _, g := range games {
		items = append(items, GameItem{
			ID:           g.ID,
			Name:         g.Name,
			Description:  g.Description,
			PricePerHour: g.PricePerHour,
			MaxPlayers:   g.MaxPlayers,
		})
	}
	return &ListGamesResponse{Games: items}
}
