// Package availability derives bookable one-hour slots from a weekly schedule.
//
// All functions are pure: the caller loads the schedule once and may query
// any number of dates against it.
package availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Slot hours never leave a single day, whatever the stored bounds say.
const (
	dayStartHour = 0
	dayEndHour   = 24
)

// WeekdayIndex maps a date to its schedule index: Monday 0 ... Sunday 6.
func WeekdayIndex(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// IsWorkDay reports whether the schedule marks the date's weekday as a work day.
// An empty schedule, a zero date or a missing day yields false.
func IsWorkDay(schedule domain.WeeklySchedule, date time.Time) bool {
	day, ok := dayFor(schedule, date)
	return ok && day.IsWorkDay
}

// AvailableTimesForDate lists the one-hour slots of the date's weekday.
//
// Only the hour part of each bound is used; minutes are ignored, so
// 09:30-11:45 yields 09-10 and 10-11. Ranges are expanded in stored order
// and the result is neither merged nor de-duplicated. A range whose hour
// cannot be parsed contributes nothing. Bounds are clamped to 0..24, so a
// range never yields more than 24 slots and start >= end yields none.
func AvailableTimesForDate(schedule domain.WeeklySchedule, date time.Time) []domain.AvailableSlot {
	slots := []domain.AvailableSlot{}

	day, ok := dayFor(schedule, date)
	if !ok || !day.IsWorkDay {
		return slots
	}

	for _, tr := range day.TimeRanges {
		start, okStart := parseHour(tr.Start)
		end, okEnd := parseHour(tr.End)
		if !okStart || !okEnd {
			continue
		}
		start = max(start, dayStartHour)
		end = min(end, dayEndHour)
		for h := start; h < end; h++ {
			slots = append(slots, domain.AvailableSlot{StartHour: h, EndHour: h + 1})
		}
	}

	return slots
}

func dayFor(schedule domain.WeeklySchedule, date time.Time) (domain.DaySchedule, bool) {
	if len(schedule) == 0 || date.IsZero() {
		return domain.DaySchedule{}, false
	}
	idx := WeekdayIndex(date)
	if idx >= len(schedule) {
		return domain.DaySchedule{}, false
	}
	return schedule[idx], true
}

// parseHour reads the leading integer of the part before ':'.
// Leading whitespace and a sign are accepted and trailing garbage is
// ignored, so "9am:00" is 9 while ":30" and "ab:00" are rejected.
func parseHour(value string) (int, bool) {
	part, _, _ := strings.Cut(value, ":")
	part = strings.TrimLeft(part, " \t\n\r")

	end := 0
	if end < len(part) && (part[end] == '+' || part[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(part) && part[end] >= '0' && part[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	h, err := strconv.Atoi(part[:end])
	if err != nil {
		return 0, false
	}
	return h, true
}
