package get_game

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// GameResponse HTTP response model
type GameResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	MaxPlayers   int     `json:"maxPlayers"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// FromDomain converts a game into the HTTP response.
func FromDomain(g *domain.Game) *GameResponse {
	return &GameResponse{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		PricePerHour: g.PricePerHour,
		MaxPlayers:   g.MaxPlayers,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
}
