package get_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
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

// Handle GET /api/v1/schedule
// Ошибки хранилища не доходят до клиента: отдаём расписание по умолчанию с fallback=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.Load(r.Context())

	if result.Fallback {
		h.logger.Warn("GET /schedule - Serving fallback schedule: %s", result.Message)
	}

	h.logger.Info("GET /schedule - Schedule retrieved: source=%s, days=%d", result.Source, len(result.Schedule))
	handlers.RespondJSON(w, http.StatusOK, models.FromLoadResult(result))
}
