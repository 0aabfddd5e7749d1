package get_game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	gamesService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/games"
)

const (
	msgInvalidGameID = "invalid game id"
	msgGameNotFound  = "game not found"
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

// Handle GET /api/v1/games/{gameId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(mux.Vars(r)["gameId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGameID)
		return
	}

	game, err := h.service.GetByID(r.Context(), gameID)
	if err != nil {
		switch {
		case errors.Is(err, gamesService.ErrGameNotFound):
			handlers.RespondNotFound(w, msgGameNotFound)

		default:
			h.logger.Error("GET /games/%d - Failed to load game: %v", gameID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(game))
}
