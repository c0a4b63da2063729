package update_time_range

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UpdateTimeRangeRequest HTTP request model; хотя бы одно поле обязательно
type UpdateTimeRangeRequest struct {
	Start *string `json:"start,omitempty" validate:"omitempty,hhmm"`
	End   *string `json:"end,omitempty" validate:"omitempty,hhmm"`
}

// IsEmpty сообщает, что менять нечего
func (r *UpdateTimeRangeRequest) IsEmpty() bool {
	return r.Start == nil && r.End == nil
}

// Apply применяет изменения к диапазону rangeID дня dayIndex
func (r *UpdateTimeRangeRequest) Apply(s domain.WeeklySchedule, dayIndex int, rangeID string) error {
	if r.Start != nil {
		if _, err := s.UpdateTimeRange(dayIndex, rangeID, domain.RangeFieldStart, *r.Start); err != nil {
			return err
		}
	}
	if r.End != nil {
		if _, err := s.UpdateTimeRange(dayIndex, rangeID, domain.RangeFieldEnd, *r.End); err != nil {
			return err
		}
	}
	return nil
}
