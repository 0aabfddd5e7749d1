package update_game

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	gamesService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/games"
)

const (
	msgInvalidGameID = "invalid game id"
	msgInvalidBody   = "invalid request body"
	msgGameNotFound  = "game not found"
	msgAdminOnly     = "only admins may manage the game catalog"
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

// Handle PUT /api/v1/games/{gameId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(mux.Vars(r)["gameId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGameID)
		return
	}

	var req UpdateGameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /games/%d - Invalid request body: %v", gameID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	game, err := h.service.Update(r.Context(), middleware.RoleFrom(r.Context()), gameID, req.ToPatch())
	if err != nil {
		switch {
		case errors.Is(err, gamesService.ErrGameNotFound):
			handlers.RespondNotFound(w, msgGameNotFound)

		case errors.Is(err, gamesService.ErrAccessDenied):
			h.logger.Warn("PUT /games/%d - Rejected for non-admin", gameID)
			handlers.RespondForbidden(w, msgAdminOnly)

		case errors.Is(err, gamesService.ErrInvalidInput):
			h.logger.Warn("PUT /games/%d - Validation failed: %v", gameID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /games/%d - Failed to update game: %v", gameID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /games/%d - Game updated", gameID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(game))
}
