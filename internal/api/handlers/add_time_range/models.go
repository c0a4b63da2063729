package add_time_range

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// AddTimeRangeResponse созданный диапазон и расписание после изменения
type AddTimeRangeResponse struct {
	TimeRange models.TimeRangeResponse `json:"timeRange"`
	Schedule  *models.ScheduleResponse `json:"schedule"`
}

func toResponse(created domain.TimeRange, schedule domain.WeeklySchedule) *AddTimeRangeResponse {
	return &AddTimeRangeResponse{
		TimeRange: models.TimeRangeResponse{ID: created.ID, Start: created.Start, End: created.End},
		Schedule:  models.FromDomainSchedule(schedule),
	}
}
