package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда запись пользователя не найдена
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("users.service: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users.service: internal error")
)
