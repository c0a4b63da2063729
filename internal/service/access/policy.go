package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
)

// Policy решает, является ли идентичность администратором, по флагу isAdmin
// в её записи пользователя
type Policy struct {
	users  UserRecordReader
	logger Logger
}

// NewPolicy создает политику доступа
func NewPolicy(users UserRecordReader, logger Logger) *Policy {
	return &Policy{users: users, logger: logger}
}

// IsAdmin возвращает true только если запись найдена и isAdmin == true.
// При отсутствии записи или ошибке чтения возвращает false вместе с ошибкой.
func (p *Policy) IsAdmin(ctx context.Context, identity domain.Identity) (bool, error) {
	user, err := p.users.GetUserRecord(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			p.logger.Warn("IsAdmin: no user record for uid=%s", identity.ID)
			return false, ErrUserRecordNotFound
		}
		p.logger.Error("IsAdmin: failed to read user record uid=%s: %v", identity.ID, err)
		return false, fmt.Errorf("%w: uid=%s: %v", ErrLookup, identity.ID, err)
	}

	return user.IsAdmin, nil
}
