package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	getAvailableSlots "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidGameID = "invalid game id"
	msgMissingDate   = "date query parameter is required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgGameNotFound  = "game not found"
	msgDateInPast    = "date is in the past"
	msgDateTooFar    = "date is beyond the advance booking window"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/games/{gameId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(mux.Vars(r)["gameId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidGameID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), getAvailableSlots.Request{
		GameID: gameID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrGameNotFound):
			handlers.RespondNotFound(w, msgGameNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFar):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /games/%d/available-slots - Failed to compute slots: %v", gameID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
