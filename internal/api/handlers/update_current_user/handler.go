package update_current_user

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные профиля"
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

// Handle PUT /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("PUT /users/me - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body; неизвестные поля (в том числе isAdmin) отклоняются
	var req UpdateCurrentUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/me - Invalid request body: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /users/me - Invalid data: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), *identity, req.ToServiceRequest())
	if err != nil {
		h.logger.Error("PUT /users/me - Failed to update profile: user_id=%s, error=%v", identity.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /users/me - Profile updated: user_id=%s", identity.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
