package add_time_range

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidDayIndex  = "некорректный индекс дня"
	msgDayNotFound      = "день не найден"
	msgNotWorkDay       = "день не рабочий"
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

// Handle POST /api/v1/schedule/days/{dayIndex}/ranges
// Добавляет диапазон 09:00-17:00 в рабочий день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayIndex, err := strconv.Atoi(mux.Vars(r)["dayIndex"])
	if err != nil {
		h.logger.Warn("POST /schedule/days/{day}/ranges - Invalid day index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayIndex)
		return
	}

	var created domain.TimeRange
	result, err := h.service.Edit(r.Context(), func(s domain.WeeklySchedule) error {
		tr, err := s.AddTimeRange(dayIndex)
		created = tr
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotAuthenticated):
			h.logger.Warn("POST /schedule/days/{day}/ranges - Not authenticated")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedule/days/{day}/ranges - Access denied: day=%d", dayIndex)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrIncompleteSchedule):
			h.logger.Warn("POST /schedule/days/{day}/ranges - Stored schedule incomplete: %v", err)
			handlers.RespondConflict(w, msgIncompleteStored)

		case errors.Is(err, domain.ErrDayIndexOutOfRange):
			h.logger.Warn("POST /schedule/days/{day}/ranges - Day not found: day=%d", dayIndex)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, domain.ErrNotWorkDay):
			h.logger.Warn("POST /schedule/days/{day}/ranges - Day is off: day=%d", dayIndex)
			handlers.RespondConflict(w, msgNotWorkDay)

		default:
			h.logger.Error("POST /schedule/days/{day}/ranges - Failed to add range: day=%d, error=%v", dayIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/days/{day}/ranges - Range added: day=%d, range_id=%s", dayIndex, created.ID)
	handlers.RespondJSON(w, http.StatusCreated, toResponse(created, result))
}
