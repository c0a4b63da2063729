package list_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/users - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), *identity)
	if err != nil {
		if errors.Is(err, users.ErrAccessDenied) {
			h.logger.Warn("GET /admin/users - Access denied: user_id=%s", identity.ID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		h.logger.Error("GET /admin/users - Failed to list users: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/users - Users listed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
