package update_time_range

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
	msgInvalidDayIndex    = "некорректный индекс дня"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "время должно быть в формате HH:MM"
	msgEmptyUpdate        = "не указано ни одно поле для изменения"
	msgDayNotFound        = "день не найден"
	msgRangeNotFound      = "диапазон не найден"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
	msgIncompleteStored   = "сохранённое расписание неполное"
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

// Handle PATCH /api/v1/schedule/days/{dayIndex}/ranges/{rangeId}
// Проверяется только формат HH:MM, порядок start < end не проверяется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dayIndex, err := strconv.Atoi(vars["dayIndex"])
	if err != nil {
		h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Invalid day index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayIndex)
		return
	}
	rangeID := vars["rangeId"]

	// Декодируем body
	var req UpdateTimeRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.IsEmpty() {
		h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Empty update: day=%d, range_id=%s", dayIndex, rangeID)
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Edit(r.Context(), func(s domain.WeeklySchedule) error {
		return req.Apply(s, dayIndex, rangeID)
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotAuthenticated):
			h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Not authenticated")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Access denied: day=%d", dayIndex)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrIncompleteSchedule):
			h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Stored schedule incomplete: %v", err)
			handlers.RespondConflict(w, msgIncompleteStored)

		case errors.Is(err, domain.ErrDayIndexOutOfRange):
			h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Day not found: day=%d", dayIndex)
			handlers.RespondNotFound(w, msgDayNotFound)

		case errors.Is(err, domain.ErrTimeRangeNotFound):
			h.logger.Warn("PATCH /schedule/days/{day}/ranges/{id} - Range not found: day=%d, range_id=%s", dayIndex, rangeID)
			handlers.RespondNotFound(w, msgRangeNotFound)

		default:
			h.logger.Error("PATCH /schedule/days/{day}/ranges/{id} - Failed to update range: day=%d, range_id=%s, error=%v",
				dayIndex, rangeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedule/days/{day}/ranges/{id} - Range updated: day=%d, range_id=%s", dayIndex, rangeID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainSchedule(result))
}
