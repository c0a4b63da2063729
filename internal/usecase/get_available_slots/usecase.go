package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// UseCase use case получения доступных слотов: расписание загружается один раз
// и используется для всех дат периода
type UseCase struct {
	loader  ScheduleLoader
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader ScheduleLoader, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		loader:  loader,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, days=%d", req.Date.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	days := req.Days
	if days == 0 {
		days = 1
	}

	// 2. Загружаем расписание (ошибки хранилища уже заменены расписанием по умолчанию)
	loaded := uc.loader.Load(ctx)

	// 3. Считаем слоты по каждой дате
	result := make([]DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		date := req.Date.AddDate(0, 0, i)
		isWorkDay := availability.IsWorkDay(loaded.Schedule, date)
		uc.metrics.SlotsQueried(isWorkDay)

		result = append(result, DayAvailability{
			Date:      date,
			IsWorkDay: isWorkDay,
			Slots:     availability.AvailableTimesForDate(loaded.Schedule, date),
		})
	}

	uc.logger.Info("GetAvailableSlots: computed %d days from %s schedule", len(result), loaded.Source)
	return &Response{
		Days:          result,
		UsingDefaults: loaded.Source == models.SourceDefault || loaded.Fallback,
		Message:       loaded.Message,
	}, nil
}
