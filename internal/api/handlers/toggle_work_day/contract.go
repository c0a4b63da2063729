package toggle_work_day

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type ScheduleService interface {
	Edit(ctx context.Context, mutate func(domain.WeeklySchedule) error) (domain.WeeklySchedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
