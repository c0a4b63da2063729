package access

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UserRecordReader читает запись пользователя из коллекции users
type UserRecordReader interface {
	GetUserRecord(ctx context.Context, uid string) (*domain.UserRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
