package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// MaxDays максимальная длина запрашиваемого периода
const MaxDays = 31

// Request запрос слотов на дату или на период из Days дней начиная с Date
type Request struct {
	Date time.Time
	// Days 0 означает «не указано» и трактуется как 1
	Days int
}

// DayAvailability слоты одной даты
type DayAvailability struct {
	Date      time.Time
	IsWorkDay bool
	Slots     []domain.AvailableSlot
}

// Response ответ use case; UsingDefaults выставлен, если расписание подставлено
type Response struct {
	Days          []DayAvailability
	UsingDefaults bool
	Message       string
}
