package get_available_slots

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotResponse слот в ответе API
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// DayResponse слоты одной даты
type DayResponse struct {
	Date      string         `json:"date"`
	DayIndex  int            `json:"dayIndex"`
	DayName   string         `json:"dayName"`
	IsWorkDay bool           `json:"isWorkDay"`
	Slots     []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Days          []DayResponse `json:"days"`
	UsingDefaults bool          `json:"usingDefaults"`
	Message       string        `json:"message,omitempty"`
}

// ToUseCaseRequest разбирает query параметры date и days.
// Явно переданный days должен быть не меньше 1; отсутствие параметра даёт одну дату.
func ToUseCaseRequest(dateStr, daysStr string) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
		if days < 1 {
			return nil, fmt.Errorf("%w: days=%d", getAvailableSlots.ErrInvalidInput, days)
		}
		req.Days = days
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotResponse{Start: slot.StartTime(), End: slot.EndTime(), Label: slot.Label()}
		}

		index := availability.WeekdayIndex(day.Date)
		days[i] = DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayIndex:  index,
			DayName:   domain.DayNames[index],
			IsWorkDay: day.IsWorkDay,
			Slots:     slots,
		}
	}

	return &AvailableSlotsResponse{
		Days:          days,
		UsingDefaults: resp.UsingDefaults,
		Message:       resp.Message,
	}
}
