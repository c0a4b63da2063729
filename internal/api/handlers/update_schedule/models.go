package update_schedule

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// TimeRangeRequest диапазон в теле запроса; пустой id означает новый диапазон
type TimeRangeRequest struct {
	ID    string `json:"id"`
	Start string `json:"start" validate:"required,hhmm"`
	End   string `json:"end" validate:"required,hhmm"`
}

// DayScheduleRequest день в теле запроса
type DayScheduleRequest struct {
	DayName    string             `json:"dayName"`
	IsWorkDay  bool               `json:"isWorkDay"`
	TimeRanges []TimeRangeRequest `json:"timeRanges" validate:"dive"`
}

// UpdateScheduleRequest HTTP request model; число дней проверяет сервис
type UpdateScheduleRequest struct {
	Days []DayScheduleRequest `json:"days" validate:"required,dive"`
}

// ToDomain конвертирует HTTP request в доменное расписание
func (r *UpdateScheduleRequest) ToDomain() domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, len(r.Days))
	for i, day := range r.Days {
		name := day.DayName
		if name == "" && i < domain.DaysInWeek {
			name = domain.DayNames[i]
		}

		ranges := make([]domain.TimeRange, len(day.TimeRanges))
		for j, tr := range day.TimeRanges {
			if tr.ID == "" {
				ranges[j] = domain.NewTimeRange(tr.Start, tr.End)
				continue
			}
			ranges[j] = domain.TimeRange{ID: tr.ID, Start: tr.Start, End: tr.End}
		}

		schedule[i] = domain.DaySchedule{
			DayName:    name,
			IsWorkDay:  day.IsWorkDay,
			TimeRanges: ranges,
		}
	}
	return schedule
}
