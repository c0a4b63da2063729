package toggle_work_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

const (
	msgInvalidDayIndex  = "некорректный индекс дня"
	msgDayNotFound      = "день не найден"
	msgUnauthorized     = "требуется авторизация"
	msgForbidden        = "доступ запрещен"
	msgIncompleteStored = "сохранённое расписание неполное"
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

// Handle POST /api/v1/schedule/days/{dayIndex}/toggle
// Включение дня без диапазонов добавляет диапазон 09:00-17:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayIndex, err := strconv.Atoi(mux.Vars(r)["dayIndex"])
	if err != nil {
		h.logger.Warn("POST /schedule/days/{day}/toggle - Invalid day index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayIndex)
		return
	}

	result, err := h.service.Edit(r.Context(), func(s domain.WeeklySchedule) error {
		return s.ToggleWorkDay(dayIndex)
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotAuthenticated):
			h.logger.Warn("POST /schedule/days/{day}/toggle - Not authenticated")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedule/days/{day}/toggle - Access denied: day=%d", dayIndex)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrIncompleteSchedule):
			h.logger.Warn("POST /schedule/days/{day}/toggle - Stored schedule incomplete: %v", err)
			handlers.RespondConflict(w, msgIncompleteStored)

		case errors.Is(err, domain.ErrDayIndexOutOfRange):
			h.logger.Warn("POST /schedule/days/{day}/toggle - Day not found: day=%d", dayIndex)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("POST /schedule/days/{day}/toggle - Failed to toggle day: day=%d, error=%v", dayIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/days/{day}/toggle - Day toggled: day=%d, work_day=%t", dayIndex, result[dayIndex].IsWorkDay)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSchedule(result))
}
