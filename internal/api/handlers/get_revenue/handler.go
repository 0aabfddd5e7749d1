package get_revenue

import (
	"errors"
	"net/http"
	"time"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	gamesService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/games"
)

const (
	msgMissingPeriod = "startDate and endDate query parameters are required"
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidPeriod = "endDate must not be before startDate"
	msgAdminOnly     = "only admins may view revenue"
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

// Handle GET /api/v1/analytics/revenue?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawStart := r.URL.Query().Get("startDate")
	rawEnd := r.URL.Query().Get("endDate")
	if rawStart == "" || rawEnd == "" {
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, rawStart)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, rawEnd)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	rows, err := h.service.Revenue(r.Context(), middleware.RoleFrom(r.Context()), startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, gamesService.ErrAccessDenied):
			h.logger.Warn("GET /analytics/revenue - Rejected for non-admin")
			handlers.RespondForbidden(w, msgAdminOnly)

		case errors.Is(err, gamesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /analytics/revenue - Failed to compute revenue: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(rawStart, rawEnd, rows))
}
