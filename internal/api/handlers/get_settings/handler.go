package get_settings

import (
	"errors"
	"net/http"

	"github.com/SaiDeepak16/BoundaryBox-BookingService/internal/api/handlers"
	settingsService "github.com/SaiDeepak16/BoundaryBox-BookingService/internal/service/settings"
)

const msgSettingsNotFound = "system settings not configured"

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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrSettingsNotFound):
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("GET /settings - Failed to load settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(settings))
}
