package update_settings

import (
	"errors"
	"net/http"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/middleware"
	settingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/settings"
)

const (
	msgInvalidBody      = "invalid request body"
	msgInvalidTime      = "invalid time format, expected HH:MM"
	msgAdminOnly        = "only admins may change system settings"
	msgSettingsNotFound = "system settings not configured"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PUT /settings - Failed to parse time fields: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	settings, err := h.service.Update(r.Context(), middleware.RoleFrom(r.Context()), patch)
	if err != nil {
		var validationErr *settingsService.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /settings - Validation failed: %d violations", len(validationErr.Messages))
			handlers.RespondValidationErrors(w, validationErr.Messages)

		case errors.Is(err, settingsService.ErrAccessDenied):
			h.logger.Warn("PUT /settings - Rejected for non-admin")
			handlers.RespondForbidden(w, msgAdminOnly)

		case errors.Is(err, settingsService.ErrSettingsNotFound):
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(settings))
}
