package events

import "time"

// EventScheduleUpdated тип события об изменении недельного расписания
const EventScheduleUpdated = "schedule.updated"

// ScheduleUpdated публикуется после успешного сохранения расписания
type ScheduleUpdated struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	UpdatedBy string    `json:"updatedBy"`
	WorkDays  []int     `json:"workDays"`
	Days      int       `json:"days"`
	UpdatedAt time.Time `json:"updatedAt"`
}
