package schedule

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда нет текущей идентичности
	ErrNotAuthenticated = errors.New("schedule.service: not authenticated")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("schedule.service: access denied")

	// ErrIncompleteSchedule возвращается при редактировании неполного сохранённого расписания
	ErrIncompleteSchedule = errors.New("schedule.service: stored schedule is incomplete")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
