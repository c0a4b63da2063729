package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// ScheduleLoader загружает недельное расписание (с подстановкой по умолчанию)
type ScheduleLoader interface {
	Load(ctx context.Context) *models.LoadResult
}

// Metrics счетчик запросов слотов
type Metrics interface {
	SlotsQueried(workDay bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
