package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/domain"
	bookingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "invalid user id"
	msgInvalidStatus = "invalid status filter"
	msgAccessDenied  = "access to this user's bookings is denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var statusFilter *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseBookingStatus(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		statusFilter = &status
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, requesterID, middleware.RoleFrom(r.Context()), statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /users/%d/bookings - Access denied for user_id=%d", userID, requesterID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/%d/bookings - Failed to load bookings: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(userID, bookings))
}
