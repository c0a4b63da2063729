package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда запись пользователя не найдена
	ErrUserNotFound = errors.New("users.repository: user not found")

	// ErrReadStore возвращается при ошибке чтения коллекции users
	ErrReadStore = errors.New("users.repository: failed to read user")

	// ErrWriteStore возвращается при ошибке записи пользователя
	ErrWriteStore = errors.New("users.repository: failed to write user")

	// ErrDecode возвращается, когда запись не удаётся разобрать
	ErrDecode = errors.New("users.repository: failed to decode user")

	// ErrEncode возвращается, когда запись не удаётся сериализовать
	ErrEncode = errors.New("users.repository: failed to encode user")
)
