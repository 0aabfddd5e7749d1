package cancel_booking

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	bookingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgInvalidBody      = "invalid request body"
	msgBookingNotFound  = "booking not found"
	msgAccessDenied     = "access to this booking is denied"
	msgCannotCancel     = "booking cannot be canceled in its current status"
	msgDeadlinePassed   = "too close to the start time to cancel"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing authentication")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// The reason body is optional.
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/%d/cancel - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID, userID, middleware.RoleFrom(r.Context()), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%d/cancel - Access denied for user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/%d/cancel - Invalid transition: %v", bookingID, err)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, bookingsService.ErrCancellationDeadline):
			h.logger.Warn("PATCH /bookings/%d/cancel - Deadline passed for user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDeadlinePassed)

		default:
			h.logger.Error("PATCH /bookings/%d/cancel - Failed to cancel: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%d/cancel - Booking canceled by user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
