package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/events"
)

// ScheduleRepository интерфейс репозитория дней недели
type ScheduleRepository interface {
	ListDays(ctx context.Context) ([]domain.StoredDay, error)
	DeleteDay(ctx context.Context, key string) error
	WriteDay(ctx context.Context, key string, day domain.DaySchedule) error
}

// ScheduleCache кэш последнего успешно прочитанного расписания
type ScheduleCache interface {
	Get(ctx context.Context) (domain.WeeklySchedule, bool, error)
	Set(ctx context.Context, schedule domain.WeeklySchedule) error
	Invalidate(ctx context.Context) error
}

// IdentityProvider возвращает текущую идентичность или nil
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) *domain.Identity
}

// AuthorizationPort отвечает, является ли идентичность администратором
type AuthorizationPort interface {
	IsAdmin(ctx context.Context, identity domain.Identity) (bool, error)
}

// EventPublisher публикует события об изменении расписания
type EventPublisher interface {
	PublishScheduleUpdated(ctx context.Context, event events.ScheduleUpdated) error
}

// Metrics счетчики загрузок и сохранений
type Metrics interface {
	ScheduleLoaded(source string)
	ScheduleSaved(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
