package get_current_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users"
)

const (
	msgUnauthorized = "требуется авторизация"
	msgNotFound     = "пользователь не найден"
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

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	user, err := h.service.GetCurrent(r.Context(), *identity)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/me - User not found: user_id=%s", identity.ID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /users/me - Failed to get user: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/me - User retrieved: user_id=%s", identity.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
