package schedule

import "errors"

var (
	// ErrReadStore возвращается при ошибке чтения коллекции расписания
	ErrReadStore = errors.New("schedule.repository: failed to read schedule")

	// ErrWriteStore возвращается при ошибке записи дня
	ErrWriteStore = errors.New("schedule.repository: failed to write day")

	// ErrDeleteStore возвращается при ошибке удаления дня
	ErrDeleteStore = errors.New("schedule.repository: failed to delete day")

	// ErrDecode возвращается, когда документ дня не удаётся разобрать
	ErrDecode = errors.New("schedule.repository: failed to decode day")

	// ErrEncode возвращается, когда день не удаётся сериализовать
	ErrEncode = errors.New("schedule.repository: failed to encode day")
)
