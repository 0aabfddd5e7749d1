package delete_game

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

// Handle DELETE /api/v1/games/{gameId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(mux.Vars(r)["gameId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGameID)
		return
	}

	err = h.service.Delete(r.Context(), middleware.RoleFrom(r.Context()), gameID)
	if err != nil {
		switch {
		case errors.Is(err, gamesService.ErrGameNotFound):
			handlers.RespondNotFound(w, msgGameNotFound)

		case errors.Is(err, gamesService.ErrAccessDenied):
			h.logger.Warn("DELETE /games/%d - Rejected for non-admin", gameID)
			handlers.RespondForbidden(w, msgAdminOnly)

		default:
			h.logger.Error("DELETE /games/%d - Failed to delete game: %v", gameID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /games/%d - Game removed from catalog", gameID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
