package delete_study

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidFileName = "некорректное имя файла"
	msgNotFound        = "файл не найден"
)

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

// Handle DELETE /api/v1/users/me/studies/{fileName}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.logger.Warn("DELETE /users/me/studies/{name} - Not authenticated")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	fileName := mux.Vars(r)["fileName"]

	if err := h.service.Delete(r.Context(), identity.ID, fileName); err != nil {
		switch {
		case errors.Is(err, studies.ErrInvalidFileName):
			h.logger.Warn("DELETE /users/me/studies/{name} - Invalid file name: user_id=%s, name=%q", identity.ID, fileName)
			handlers.RespondBadRequest(w, msgInvalidFileName)

		case errors.Is(err, studies.ErrStudyNotFound):
			h.logger.Warn("DELETE /users/me/studies/{name} - Not found: user_id=%s, name=%q", identity.ID, fileName)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /users/me/studies/{name} - Failed to delete: user_id=%s, error=%v", identity.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/me/studies/{name} - Study deleted: user_id=%s, name=%q", identity.ID, fileName)
	w.WriteHeader(http.StatusNoContent)
}
