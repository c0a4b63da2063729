package users

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetUserRecord(ctx context.Context, uid string) (*domain.UserRecord, error)
	Save(ctx context.Context, user *domain.UserRecord) error
	List(ctx context.Context) ([]*domain.UserRecord, error)
}

// AuthorizationPort отвечает, является ли идентичность администратором
type AuthorizationPort interface {
	IsAdmin(ctx context.Context, identity domain.Identity) (bool, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
