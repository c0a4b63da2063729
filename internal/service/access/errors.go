package access

import "errors"

var (
	// ErrUserRecordNotFound возвращается, когда у идентичности нет записи пользователя
	ErrUserRecordNotFound = errors.New("access: user record not found")

	// ErrLookup возвращается при ошибке чтения записи пользователя
	ErrLookup = errors.New("access: user lookup failed")
)
