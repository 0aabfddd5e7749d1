package create_game

import (
	"errors"
	"net/http"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	gamesService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/games"
)

const (
	msgInvalidBody = "invalid request body"
	msgAdminOnly   = "only admins may manage the game catalog"
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

// Handle POST /api/v1/games
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /games - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	game, err := h.service.Create(r.Context(), middleware.RoleFrom(r.Context()), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, gamesService.ErrAccessDenied):
			h.logger.Warn("POST /games - Rejected for non-admin")
			handlers.RespondForbidden(w, msgAdminOnly)

		case errors.Is(err, gamesService.ErrInvalidInput):
			h.logger.Warn("POST /games - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /games - Failed to create game: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /games - Game created: game_id=%d, name=%q", game.ID, game.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(game))
}
