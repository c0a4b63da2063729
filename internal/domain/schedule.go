package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// TimeRange is a working interval within a day.
// Start and End are "HH:MM" strings; Start < End is not enforced.
type TimeRange struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule is the configuration of one weekday.
// A day that is not a work day has no ranges.
type DaySchedule struct {
	DayName    string      `json:"dayName"`
	IsWorkDay  bool        `json:"isWorkDay"`
	TimeRanges []TimeRange `json:"timeRanges"`
}

// WeeklySchedule is ordered Monday (0) through Sunday (6).
type WeeklySchedule []DaySchedule

// StoredDay is a day as read from the document store, with its key.
type StoredDay struct {
	Key string
	Day DaySchedule
}

// RangeField names an editable TimeRange bound.
type RangeField string

const (
	RangeFieldStart RangeField = "start"
	RangeFieldEnd   RangeField = "end"
)

// NewTimeRange returns a range with a fresh random id.
func NewTimeRange(start, end string) TimeRange {
	return TimeRange{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
	}
}

// NewDefaultTimeRange returns a fresh 09:00-17:00 range.
func NewDefaultTimeRange() TimeRange {
	return NewTimeRange(DefaultRangeStart, DefaultRangeEnd)
}

// NewDefaultSchedule returns Monday-Saturday working 09:00-17:00, Sunday off.
func NewDefaultSchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, DaysInWeek)
	for i, name := range DayNames {
		isWorkDay := i != DaysInWeek-1
		ranges := []TimeRange{}
		if isWorkDay {
			ranges = append(ranges, NewDefaultTimeRange())
		}
		schedule[i] = DaySchedule{
			DayName:    name,
			IsWorkDay:  isWorkDay,
			TimeRanges: ranges,
		}
	}
	return schedule
}

// DayKey returns the document key for a day index.
func DayKey(index int) string {
	return fmt.Sprintf("%s%d", DayKeyPrefix, index)
}

// ParseDayKey extracts the ordinal from a "day-N" key.
func ParseDayKey(key string) (int, bool) {
	if !strings.HasPrefix(key, DayKeyPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(key, DayKeyPrefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Clone returns a deep copy.
func (w WeeklySchedule) Clone() WeeklySchedule {
	if w == nil {
		return nil
	}
	out := make(WeeklySchedule, len(w))
	for i, day := range w {
		out[i] = day.Clone()
	}
	return out
}

// Clone returns a deep copy. Nil ranges become an empty slice.
func (d DaySchedule) Clone() DaySchedule {
	ranges := make([]TimeRange, len(d.TimeRanges))
	copy(ranges, d.TimeRanges)
	d.TimeRanges = ranges
	return d
}

// Validate checks the shape required for persisting.
func (w WeeklySchedule) Validate() error {
	if len(w) != DaysInWeek {
		return fmt.Errorf("%w: got %d", ErrInvalidWeekLength, len(w))
	}
	return nil
}

// ToggleWorkDay flips the work-day flag. Switching off clears the ranges,
// switching on an empty day adds the default range.
func (w WeeklySchedule) ToggleWorkDay(dayIndex int) error {
	day, err := w.day(dayIndex)
	if err != nil {
		return err
	}

	day.IsWorkDay = !day.IsWorkDay
	if !day.IsWorkDay {
		day.TimeRanges = []TimeRange{}
		return nil
	}
	if len(day.TimeRanges) == 0 {
		day.TimeRanges = []TimeRange{NewDefaultTimeRange()}
	}
	return nil
}

// AddTimeRange appends a default range and returns it.
func (w WeeklySchedule) AddTimeRange(dayIndex int) (TimeRange, error) {
	day, err := w.day(dayIndex)
	if err != nil {
		return TimeRange{}, err
	}
	if !day.IsWorkDay {
		return TimeRange{}, ErrNotWorkDay
	}

	tr := NewDefaultTimeRange()
	day.TimeRanges = append(day.TimeRanges, tr)
	return tr, nil
}

// RemoveTimeRange removes the range with rangeID.
func (w WeeklySchedule) RemoveTimeRange(dayIndex int, rangeID string) error {
	day, err := w.day(dayIndex)
	if err != nil {
		return err
	}

	idx := day.rangeIndex(rangeID)
	if idx < 0 {
		return ErrTimeRangeNotFound
	}
	if day.IsWorkDay && len(day.TimeRanges) == 1 {
		return ErrLastTimeRange
	}

	day.TimeRanges = append(day.TimeRanges[:idx:idx], day.TimeRanges[idx+1:]...)
	return nil
}

// UpdateTimeRange sets one bound of the range with rangeID.
func (w WeeklySchedule) UpdateTimeRange(dayIndex int, rangeID string, field RangeField, value string) (TimeRange, error) {
	day, err := w.day(dayIndex)
	if err != nil {
		return TimeRange{}, err
	}

	idx := day.rangeIndex(rangeID)
	if idx < 0 {
		return TimeRange{}, ErrTimeRangeNotFound
	}

	switch field {
	case RangeFieldStart:
		day.TimeRanges[idx].Start = value
	case RangeFieldEnd:
		day.TimeRanges[idx].End = value
	default:
		return TimeRange{}, fmt.Errorf("%w: %q", ErrUnknownRangeField, field)
	}
	return day.TimeRanges[idx], nil
}

func (w WeeklySchedule) day(index int) (*DaySchedule, error) {
	if index < 0 || index >= len(w) {
		return nil, fmt.Errorf("%w: %d", ErrDayIndexOutOfRange, index)
	}
	return &w[index], nil
}

func (d *DaySchedule) rangeIndex(id string) int {
	for i, tr := range d.TimeRanges {
		if tr.ID == id {
			return i
		}
	}
	return -1
}
