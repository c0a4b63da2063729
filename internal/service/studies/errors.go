package studies

import "errors"

var (
	// ErrInvalidFileName возвращается для пустого имени или имени с путём
	ErrInvalidFileName = errors.New("studies.service: invalid file name")

	// ErrUnsupportedFileType возвращается для недопустимого расширения
	ErrUnsupportedFileType = errors.New("studies.service: unsupported file type")

	// ErrEmptyFile возвращается для пустого файла
	ErrEmptyFile = errors.New("studies.service: empty file")

	// ErrFileTooLarge возвращается при превышении максимального размера
	ErrFileTooLarge = errors.New("studies.service: file too large")

	// ErrStudyNotFound возвращается, когда файла нет
	ErrStudyNotFound = errors.New("studies.service: study not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("studies.service: internal error")
)
