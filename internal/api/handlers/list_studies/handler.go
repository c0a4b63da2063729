package list_studies

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

type Handler struct {
	service StudyService
	logger  Logger
}

func NewHandler(service StudyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/studies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me/studies - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), identity.ID)
	if err != nil {
		h.logger.Error("GET /users/me/studies - Failed to list studies: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me/studies - Studies listed: user_id=%s, total=%d", identity.ID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
