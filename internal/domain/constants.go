package domain

// Document store layout
const (
	ScheduleCollection = "schedule"
	UsersCollection    = "users"
	DayKeyPrefix       = "day-"
)

// DaysInWeek number of entries in a complete weekly schedule
const DaysInWeek = 7

// Default range used for new ranges and for the default schedule
const (
	DefaultRangeStart = "09:00"
	DefaultRangeEnd   = "17:00"
)

// DayNames persisted labels, index 0 = Monday ... 6 = Sunday
var DayNames = [DaysInWeek]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
