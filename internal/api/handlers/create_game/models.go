package create_game

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// CreateGameRequest HTTP request model
type CreateGameRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	MaxPlayers   int     `json:"maxPlayers"`
}

// GameResponse HTTP response model
type GameResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	MaxPlayers   int     `json:"maxPlayers"`
	CreatedAt    string  `json:"createdAt"`
}

// ToDomain converts the HTTP request into a game.
func (r *CreateGameRequest) ToDomain() *domain.Game {
	return &domain.Game{
		Name:         r.Name,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		MaxPlayers:   r.MaxPlayers,
	}
}

// FromDomain converts the created game into the HTTP response.
func FromDomain(g *domain.Game) *GameResponse {
	return &GameResponse{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		PricePerHour: g.PricePerHour,
		MaxPlayers:   g.MaxPlayers,
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
	}
}
