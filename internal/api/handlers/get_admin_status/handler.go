package get_admin_status

import (
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
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

// Handle GET /api/v1/admin/status
// Всегда 200: отказ и анонимность выражены полями ответа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.service.VerifyAdminStatus(r.Context())

	h.logger.Info("GET /admin/status - authenticated=%t, is_admin=%t", status.Authenticated, status.IsAdmin)
	handlers.RespondJSON(w, http.StatusOK, status)
}
