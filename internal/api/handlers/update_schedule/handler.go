package update_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule
// Заменяет всё расписание; права администратора проверяет сервис
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	// Сохраняем; результат всегда структурированный
	result := h.service.Save(r.Context(), req.ToDomain())

	switch result.Status {
	case models.SaveStatusSaved:
		h.logger.Info("PUT /schedule - Schedule saved: days=%d", len(req.Days))
		handlers.RespondJSON(w, http.StatusOK, result)

	case models.SaveStatusUnauthorized:
		h.logger.Warn("PUT /schedule - Save rejected: %s", result.Message)
		handlers.RespondJSON(w, http.StatusForbidden, result)

	case models.SaveStatusInvalid:
		h.logger.Warn("PUT /schedule - Invalid schedule: %s", result.Message)
		handlers.RespondJSON(w, http.StatusBadRequest, result)

	default:
		h.logger.Error("PUT /schedule - Failed to save schedule: %s", result.Message)
		handlers.RespondJSON(w, http.StatusInternalServerError, result)
	}
}
