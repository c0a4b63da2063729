package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func slots(pairs ...int) []domain.AvailableSlot {
	out := []domain.AvailableSlot{}
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.AvailableSlot{StartHour: pairs[i], EndHour: pairs[i+1]})
	}
	return out
}

func scheduleWithMonday(ranges ...domain.TimeRange) domain.WeeklySchedule {
	schedule := domain.NewDefaultSchedule()
	schedule[0].TimeRanges = ranges
	return schedule
}

func allOff() domain.WeeklySchedule {
	schedule := domain.NewDefaultSchedule()
	for i := range schedule {
		schedule[i].IsWorkDay = false
		schedule[i].TimeRanges = []domain.TimeRange{}
	}
	return schedule
}

func TestWeekdayIndex(t *testing.T) {
	// 2024-06-03 понедельник
	tests := []struct {
		date string
		want int
	}{
		{"2024-06-03", 0},
		{"2024-06-04", 1},
		{"2024-06-05", 2},
		{"2024-06-06", 3},
		{"2024-06-07", 4},
		{"2024-06-08", 5},
		{"2024-06-09", 6},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekdayIndex(date(t, tt.date)))
		})
	}
}

func TestIsWorkDay(t *testing.T) {
	schedule := domain.NewDefaultSchedule()

	assert.True(t, IsWorkDay(schedule, date(t, "2024-06-03")))
	assert.True(t, IsWorkDay(schedule, date(t, "2024-06-08")))
	assert.False(t, IsWorkDay(schedule, date(t, "2024-06-09")))

	assert.False(t, IsWorkDay(nil, date(t, "2024-06-03")))
	assert.False(t, IsWorkDay(schedule, time.Time{}))

	// частичное расписание: воскресенья нет
	assert.False(t, IsWorkDay(schedule[:3], date(t, "2024-06-09")))
	assert.True(t, IsWorkDay(schedule[:3], date(t, "2024-06-05")))
}

func TestAvailableTimesForDate_DefaultWorkDay(t *testing.T) {
	got := AvailableTimesForDate(scheduleWithMonday(domain.TimeRange{ID: "a", Start: "09:00", End: "17:00"}), date(t, "2024-06-03"))

	assert.Equal(t, slots(9, 10, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15, 16, 16, 17), got)
	require.Len(t, got, 8)
	assert.Equal(t, "09:00 - 10:00", got[0].Label())
	assert.Equal(t, "16:00 - 17:00", got[7].Label())
}

func TestAvailableTimesForDate_AllOff(t *testing.T) {
	schedule := allOff()

	for d := date(t, "2024-06-01"); d.Before(date(t, "2024-06-15")); d = d.AddDate(0, 0, 1) {
		assert.Empty(t, AvailableTimesForDate(schedule, d), d.Format(domain.DateFormat))
		assert.False(t, IsWorkDay(schedule, d))
	}
}

func TestAvailableTimesForDate_OverlappingRangesAreConcatenated(t *testing.T) {
	schedule := scheduleWithMonday(
		domain.TimeRange{ID: "a", Start: "09:00", End: "12:00"},
		domain.TimeRange{ID: "b", Start: "10:00", End: "14:00"},
	)

	got := AvailableTimesForDate(schedule, date(t, "2024-06-03"))

	assert.Equal(t, slots(9, 10, 10, 11, 11, 12, 10, 11, 11, 12, 12, 13, 13, 14), got)
}

func TestAvailableTimesForDate_RangeOrderIsKept(t *testing.T) {
	schedule := scheduleWithMonday(
		domain.TimeRange{ID: "a", Start: "15:00", End: "17:00"},
		domain.TimeRange{ID: "b", Start: "08:00", End: "10:00"},
	)

	got := AvailableTimesForDate(schedule, date(t, "2024-06-03"))

	assert.Equal(t, slots(15, 16, 16, 17, 8, 9, 9, 10), got)
}

func TestAvailableTimesForDate_MinutesIgnored(t *testing.T) {
	schedule := scheduleWithMonday(domain.TimeRange{ID: "a", Start: "09:30", End: "11:45"})

	got := AvailableTimesForDate(schedule, date(t, "2024-06-03"))

	assert.Equal(t, slots(9, 10, 10, 11), got)
}

func TestAvailableTimesForDate_EdgeRanges(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []domain.AvailableSlot
	}{
		{"start equals end", "10:00", "10:00", slots()},
		{"start after end", "17:00", "09:00", slots()},
		{"malformed start", "ab:00", "12:00", slots()},
		{"malformed end", "10:00", "", slots()},
		{"empty start", "", "12:00", slots()},
		{"single digit hour", "9:00", "11:00", slots(9, 10, 10, 11)},
		{"trailing garbage", "9am", "10pm", slots(9, 10)},
		{"until midnight", "22:00", "24:00", slots(22, 23, 23, 24)},
		{"end past midnight", "22:00", "27:00", slots(22, 23, 23, 24)},
		{"negative start", "-2:00", "01:00", slots(0, 1)},
		{"both past midnight", "25:00", "30:00", slots()},
		{"inverted after clamp", "30:00", "-5:00", slots()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := scheduleWithMonday(domain.TimeRange{ID: "x", Start: tt.start, End: tt.end})
			assert.Equal(t, tt.want, AvailableTimesForDate(schedule, date(t, "2024-06-03")))
		})
	}
}

func TestAvailableTimesForDate_HugeBoundsStayWithinDay(t *testing.T) {
	schedule := scheduleWithMonday(domain.TimeRange{ID: "x", Start: "0:00", End: "2000000000:00"})

	got := AvailableTimesForDate(schedule, date(t, "2024-06-03"))

	require.Len(t, got, 24)
	assert.Equal(t, domain.AvailableSlot{StartHour: 0, EndHour: 1}, got[0])
	assert.Equal(t, domain.AvailableSlot{StartHour: 23, EndHour: 24}, got[23])
}

func TestAvailableTimesForDate_MalformedRangeDoesNotAffectOthers(t *testing.T) {
	schedule := scheduleWithMonday(
		domain.TimeRange{ID: "a", Start: "xx:00", End: "12:00"},
		domain.TimeRange{ID: "b", Start: "13:00", End: "14:00"},
	)

	assert.Equal(t, slots(13, 14), AvailableTimesForDate(schedule, date(t, "2024-06-03")))
}

func TestAvailableTimesForDate_NonWorkDayIgnoresRanges(t *testing.T) {
	schedule := domain.NewDefaultSchedule()
	schedule[6].TimeRanges = []domain.TimeRange{{ID: "a", Start: "09:00", End: "12:00"}}

	assert.Empty(t, AvailableTimesForDate(schedule, date(t, "2024-06-09")))
}

func TestAvailableTimesForDate_EmptyInputs(t *testing.T) {
	assert.Empty(t, AvailableTimesForDate(nil, date(t, "2024-06-03")))
	assert.Empty(t, AvailableTimesForDate(domain.NewDefaultSchedule(), time.Time{}))
	assert.NotNil(t, AvailableTimesForDate(nil, date(t, "2024-06-03")))
}

func TestAvailableTimesForDate_Idempotent(t *testing.T) {
	schedule := domain.NewDefaultSchedule()
	d := date(t, "2024-06-05")

	first := AvailableTimesForDate(schedule, d)
	second := AvailableTimesForDate(schedule, d.Add(13*time.Hour))
	third := AvailableTimesForDate(schedule, d)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
	assert.Equal(t, domain.NewDefaultSchedule()[2].TimeRanges[0].Start, schedule[2].TimeRanges[0].Start)
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 9, true},
		{"17:59", 17, true},
		{" 8:00", 8, true},
		{"+7:00", 7, true},
		{"-1:00", -1, true},
		{"12", 12, true},
		{":30", 0, false},
		{"-:00", 0, false},
		{"", 0, false},
		{"99999999999999999999:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseHour(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
