package remove_time_range

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
	msgRangeNotFound    = "диапазон не найден"
	msgLastRange        = "нельзя удалить последний диапазон рабочего дня"
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

// Handle DELETE /api/v1/schedule/days/{dayIndex}/ranges/{rangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dayIndex, err := strconv.Atoi(vars["dayIndex"])
	if err != nil {
		h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Invalid day index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayIndex)
		return
	}
	rangeID := vars["rangeId"]

	result, err := h.service.Edit(r.Context(), func(s domain.WeeklySchedule) error {
		return s.RemoveTimeRange(dayIndex, rangeID)
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotAuthenticated):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Not authenticated")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Access denied: day=%d", dayIndex)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrIncompleteSchedule):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Stored schedule incomplete: %v", err)
			handlers.RespondConflict(w, msgIncompleteStored)

		case errors.Is(err, domain.ErrDayIndexOutOfRange):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Day not found: day=%d", dayIndex)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, domain.ErrTimeRangeNotFound):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Range not found: day=%d, range_id=%s", dayIndex, rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		case errors.Is(err, domain.ErrLastTimeRange):
			h.logger.Warn("DELETE /schedule/days/{day}/ranges/{id} - Last range of work day: day=%d", dayIndex)
			handlers.RespondConflict(w, msgLastRange)

		default:
			h.logger.Error("DELETE /schedule/days/{day}/ranges/{id} - Failed to remove range: day=%d, range_id=%s, error=%v",
				dayIndex, rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/days/{day}/ranges/{id} - Range removed: day=%d, range_id=%s", dayIndex, rangeID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSchedule(result))
}
