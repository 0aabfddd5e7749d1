package update_game

import (
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
)

// UpdateGameRequest HTTP request model; omitted fields keep their current
// value.
type UpdateGameRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	MaxPlayers   *int     `json:"maxPlayers,omitempty"`
}

// GameResponse HTTP response model
type GameResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"pricePerHour"`
	MaxPlayers   int     `json:"maxPlayers"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToPatch converts the HTTP request into a game patch.
func (r *UpdateGameRequest) ToPatch() domain.GamePatch {
	return domain.GamePatch{
		Name:         r.Name,
		Description:  r.Description,
		PricePerHour: r.PricePerHour,
		MaxPlayers:   r.MaxPlayers,
	}
}

// FromDomain converts the updated game into the HTTP response.
func FromDomain(g *domain.Game) *GameResponse {
	return &GameResponse{
		ID:           g.ID,
		Name:         g.Name,
		Description:  g.Description,
		PricePerHour: g.PricePerHour,
		MaxPlayers:   g.MaxPlayers,
		UpdatedAt:    g.UpdatedAt.Format(time.RFC3339),
	}
}
