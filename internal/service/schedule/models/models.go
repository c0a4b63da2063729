package models

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// LoadSource откуда получено расписание
type LoadSource string

const (
	SourceStore    LoadSource = "store"
	SourceDefault  LoadSource = "default"
	SourceFallback LoadSource = "fallback"
	SourceCache    LoadSource = "cache"
)

// LoadResult результат загрузки расписания; ошибок не бывает, вместо них Fallback
type LoadResult struct {
	Schedule domain.WeeklySchedule
	Source   LoadSource
	Fallback bool
	Message  string
}

// SaveStatus исход сохранения
type SaveStatus string

const (
	SaveStatusSaved        SaveStatus = "saved"
	SaveStatusUnauthorized SaveStatus = "unauthorized"
	SaveStatusInvalid      SaveStatus = "invalid"
	SaveStatusStoreError   SaveStatus = "store_error"
)

// SaveResult структурированный результат сохранения
type SaveResult struct {
	Success bool       `json:"success"`
	Status  SaveStatus `json:"status"`
	Message string     `json:"message"`
}

// AdminStatus результат проверки прав администратора
type AdminStatus struct {
	IsAdmin       bool   `json:"isAdmin"`
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message"`
}

// TimeRangeResponse диапазон в ответе API
type TimeRangeResponse struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayScheduleResponse день в ответе API
type DayScheduleResponse struct {
	DayIndex   int                 `json:"dayIndex"`
	DayName    string              `json:"dayName"`
	IsWorkDay  bool                `json:"isWorkDay"`
	TimeRanges []TimeRangeResponse `json:"timeRanges"`
}

// ScheduleResponse расписание в ответе API
type ScheduleResponse struct {
	Days     []DayScheduleResponse `json:"days"`
	Source   LoadSource            `json:"source,omitempty"`
	Fallback bool                  `json:"fallback"`
	Message  string                `json:"message,omitempty"`
}

// FromDomainSchedule конвертирует доменное расписание в ответ API
func FromDomainSchedule(schedule domain.WeeklySchedule) *ScheduleResponse {
	days := make([]DayScheduleResponse, len(schedule))
	for i, day := range schedule {
		ranges := make([]TimeRangeResponse, len(day.TimeRanges))
		for j, tr := range day.TimeRanges {
			ranges[j] = TimeRangeResponse{ID: tr.ID, Start: tr.Start, End: tr.End}
		}
		days[i] = DayScheduleResponse{
			DayIndex:   i,
			DayName:    day.DayName,
			IsWorkDay:  day.IsWorkDay,
			TimeRanges: ranges,
		}
	}
	return &ScheduleResponse{Days: days}
}

// FromLoadResult конвертирует результат загрузки в ответ API
func FromLoadResult(result *LoadResult) *ScheduleResponse {
	resp := FromDomainSchedule(result.Schedule)
	resp.Source = result.Source
	resp.Fallback = result.Fallback
	resp.Message = result.Message
	return resp
}
