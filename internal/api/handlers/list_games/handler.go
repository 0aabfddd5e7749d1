package list_games

import (
	"net/http"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
)

type Handler struct {
	service GameService
	logger  Logger
}

func NewHandler(service GameService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/games
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /games - Failed to list games: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(games))
}
