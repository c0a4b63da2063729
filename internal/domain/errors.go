package domain

import "errors"

var (
	// ErrDayIndexOutOfRange day index is not in [0, len(schedule))
	ErrDayIndexOutOfRange = errors.New("domain: day index out of range")

	// ErrTimeRangeNotFound no range with the given id on that day
	ErrTimeRangeNotFound = errors.New("domain: time range not found")

	// ErrLastTimeRange a work day must keep at least one range
	ErrLastTimeRange = errors.New("domain: cannot remove the last time range of a work day")

	// ErrNotWorkDay ranges can only be added to a work day
	ErrNotWorkDay = errors.New("domain: day is not a work day")

	// ErrUnknownRangeField field is neither "start" nor "end"
	ErrUnknownRangeField = errors.New("domain: unknown time range field")

	// ErrInvalidWeekLength schedule does not have exactly seven days
	ErrInvalidWeekLength = errors.New("domain: weekly schedule must have exactly 7 days")
)
