package schedule

import "errors"

var (
	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("schedule.cache: redis error")

	// ErrDecode возвращается, когда закэшированное значение повреждено
	ErrDecode = errors.New("schedule.cache: failed to decode cached schedule")

	// ErrEncode возвращается, когда расписание не удаётся сериализовать
	ErrEncode = errors.New("schedule.cache: failed to encode schedule")
)
