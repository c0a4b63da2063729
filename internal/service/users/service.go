package users

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users/models"
)

// Service сервис для работы с записями пользователей
type Service struct {
	repo   UserRepository
	authz  AuthorizationPort
	clock  TimeProvider
	logger Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(repo UserRepository, authz AuthorizationPort, clock TimeProvider, logger Logger) *Service {
	return &Service{
		repo:   repo,
		authz:  authz,
		clock:  clock,
		logger: logger,
	}
}

// GetCurrent возвращает запись текущего пользователя
func (s *Service) GetCurrent(ctx context.Context, identity domain.Identity) (*models.UserResponse, error) {
	user, err := s.repo.GetUserRecord(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			s.logger.Warn("GetCurrent: user uid=%s not found", identity.ID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetCurrent: repository error for uid=%s: %v", identity.ID, err)
		return nil, fmt.Errorf("%w: GetCurrent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile создает или обновляет собственную запись пользователя.
// Флаг isAdmin и дата создания сохраняются из существующей записи.
func (s *Service) UpdateProfile(ctx context.Context, identity domain.Identity, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: updating profile of uid=%s", identity.ID)
	now := s.clock.Now().UTC()

	// 1. Получаем существующую запись или создаем новую
	user, err := s.repo.GetUserRecord(ctx, identity.ID)
	switch {
	case errors.Is(err, usersRepo.ErrUserNotFound):
		user = &domain.UserRecord{
			UID:       identity.ID,
			Email:     identity.Email,
			CreatedAt: now,
		}
	case err != nil:
		s.logger.Error("UpdateProfile: repository error for uid=%s: %v", identity.ID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - get user: %v", ErrInternal, err)
	}

	// 2. Применяем изменения
	if user.Email == "" {
		user.Email = identity.Email
	}
	if req.DisplayName != nil {
		user.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.PhotoURL != nil {
		user.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}
	user.Profile = req.Profile
	user.UpdatedAt = now

	// 3. Сохраняем
	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error("UpdateProfile: failed to save uid=%s: %v", identity.ID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - save user: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile of uid=%s saved", identity.ID)
	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей, отсортированных по email. Только для администратора.
func (s *Service) List(ctx context.Context, identity domain.Identity) (*models.UserListResponse, error) {
	s.logger.Info("List: listing users by uid=%s", identity.ID)

	isAdmin, err := s.authz.IsAdmin(ctx, identity)
	if err != nil {
		if errors.Is(err, access.ErrUserRecordNotFound) {
			return nil, ErrAccessDenied
		}
		s.logger.Error("List: admin check failed for uid=%s: %v", identity.ID, err)
		return nil, fmt.Errorf("%w: List - admin check: %v", ErrInternal, err)
	}
	if !isAdmin {
		s.logger.Warn("List: uid=%s is not an admin", identity.ID)
		return nil, ErrAccessDenied
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(users, func(i, j int) bool {
		return strings.ToLower(users[i].Email) < strings.ToLower(users[j].Email)
	})

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// SetAdmin выставляет флаг администратора (операторская команда CLI, без проверки прав)
func (s *Service) SetAdmin(ctx context.Context, uid string, isAdmin bool) error {
	user, err := s.repo.GetUserRecord(ctx, uid)
	if err != nil {
		if errors.Is(err, usersRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: SetAdmin - get user: %v", ErrInternal, err)
	}

	user.IsAdmin = isAdmin
	user.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.Save(ctx, user); err != nil {
		return fmt.Errorf("%w: SetAdmin - save user: %v", ErrInternal, err)
	}

	s.logger.Info("SetAdmin: uid=%s isAdmin=%t", uid, isAdmin)
	return nil
}
