package schedule

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/events"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

const (
	msgLoadFallback       = "не удалось загрузить расписание, используется расписание по умолчанию"
	msgNotAuthenticated   = "пользователь не авторизован"
	msgUserRecordNotFound = "запись пользователя не найдена"
	msgNotAdmin           = "недостаточно прав: требуется администратор"
	msgAdminCheckFailed   = "не удалось проверить права администратора"
	msgAdminConfirmed     = "права администратора подтверждены"
	msgInvalidSchedule    = "расписание должно содержать 7 дней"
	msgStoreError         = "не удалось сохранить расписание"
	msgSaved              = "расписание сохранено"
)

// Service владеет недельным расписанием: загрузка, сохранение, проверка прав
type Service struct {
	repo       ScheduleRepository
	cache      ScheduleCache
	identities IdentityProvider
	authz      AuthorizationPort
	publisher  EventPublisher
	metrics    Metrics
	clock      TimeProvider
	logger     Logger
}

// NewService создает сервис расписания. cache и publisher могут быть nil.
func NewService(
	repo ScheduleRepository,
	cache ScheduleCache,
	identities IdentityProvider,
	authz AuthorizationPort,
	publisher EventPublisher,
	metrics Metrics,
	clock TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		identities: identities,
		authz:      authz,
		publisher:  publisher,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

// Load возвращает расписание. Пустое хранилище даёт расписание по умолчанию,
// ошибка чтения тоже, но с пометкой Fallback. Ошибку не возвращает никогда.
func (s *Service) Load(ctx context.Context) *models.LoadResult {
	// 1. Пробуем кэш
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("Load: cache read failed, going to store: %v", err)
		} else if found {
			s.metrics.ScheduleLoaded(string(models.SourceCache))
			return &models.LoadResult{Schedule: cached, Source: models.SourceCache}
		}
	}

	// 2. Читаем хранилище
	schedule, err := s.readStore(ctx)
	if err != nil {
		s.logger.Error("Load: failed to read schedule, using defaults: %v", err)
		s.metrics.ScheduleLoaded(string(models.SourceFallback))
		return &models.LoadResult{
			Schedule: domain.NewDefaultSchedule(),
			Source:   models.SourceFallback,
			Fallback: true,
			Message:  msgLoadFallback,
		}
	}

	// 3. Пустая коллекция
	if len(schedule) == 0 {
		s.logger.Info("Load: schedule collection is empty, using defaults")
		s.metrics.ScheduleLoaded(string(models.SourceDefault))
		return &models.LoadResult{Schedule: domain.NewDefaultSchedule(), Source: models.SourceDefault}
	}

	if len(schedule) != domain.DaysInWeek {
		s.logger.Warn("Load: stored schedule is partial: days=%d", len(schedule))
	}

	// 4. Кэшируем только то, что действительно прочитано
	if s.cache != nil {
		if err := s.cache.Set(ctx, schedule); err != nil {
			s.logger.Warn("Load: cache write failed: %v", err)
		}
	}

	s.metrics.ScheduleLoaded(string(models.SourceStore))
	return &models.LoadResult{Schedule: schedule, Source: models.SourceStore}
}

// Save заменяет сохранённое расписание. Только для администратора.
// Запись не транзакционна: при ошибке на середине хранилище остаётся частичным.
func (s *Service) Save(ctx context.Context, schedule domain.WeeklySchedule) *models.SaveResult {
	// 1. Проверяем права до любых записей
	identity, status := s.checkAdmin(ctx)
	if !status.IsAdmin {
		s.metrics.ScheduleSaved(string(models.SaveStatusUnauthorized))
		return &models.SaveResult{Success: false, Status: models.SaveStatusUnauthorized, Message: status.Message}
	}

	s.logger.Info("Save: saving schedule by user=%s", identity.ID)

	// 2. Проверяем форму
	if err := schedule.Validate(); err != nil {
		s.logger.Warn("Save: invalid schedule from user=%s: %v", identity.ID, err)
		s.metrics.ScheduleSaved(string(models.SaveStatusInvalid))
		return &models.SaveResult{Success: false, Status: models.SaveStatusInvalid, Message: msgInvalidSchedule}
	}

	// 3. Удаляем всё и пишем day-0..day-6
	if err := s.persist(ctx, schedule); err != nil {
		s.logger.Error("Save: failed to persist schedule: %v", err)
		s.metrics.ScheduleSaved(string(models.SaveStatusStoreError))
		return &models.SaveResult{Success: false, Status: models.SaveStatusStoreError, Message: msgStoreError}
	}

	s.afterSave(ctx, identity, schedule)

	s.logger.Info("Save: schedule saved by user=%s", identity.ID)
	return &models.SaveResult{Success: true, Status: models.SaveStatusSaved, Message: msgSaved}
}

// VerifyAdminStatus проверяет, что текущий пользователь администратор.
// Любая неопределённость трактуется как отказ.
func (s *Service) VerifyAdminStatus(ctx context.Context) models.AdminStatus {
	_, status := s.checkAdmin(ctx)
	return status
}

// Edit применяет изменение к сохранённому расписанию и сохраняет результат.
// Ошибка чтения возвращается, а не подменяется расписанием по умолчанию.
func (s *Service) Edit(ctx context.Context, mutate func(domain.WeeklySchedule) error) (domain.WeeklySchedule, error) {
	// 1. Проверяем права
	identity, status := s.checkAdmin(ctx)
	if !status.Authenticated {
		return nil, ErrNotAuthenticated
	}
	if !status.IsAdmin {
		s.logger.Warn("Edit: user=%s is not an admin", identity.ID)
		return nil, ErrAccessDenied
	}

	// 2. Строгое чтение
	current, err := s.readStore(ctx)
	if err != nil {
		s.logger.Error("Edit: failed to read schedule: %v", err)
		return nil, fmt.Errorf("%w: Edit - read schedule: %v", ErrInternal, err)
	}
	if len(current) == 0 {
		current = domain.NewDefaultSchedule()
	}
	if err := current.Validate(); err != nil {
		s.logger.Warn("Edit: stored schedule is incomplete: days=%d", len(current))
		return nil, fmt.Errorf("%w: %v", ErrIncompleteSchedule, err)
	}

	// 3. Меняем рабочую копию
	working := current.Clone()
	if err := mutate(working); err != nil {
		s.logger.Warn("Edit: mutation rejected for user=%s: %v", identity.ID, err)
		return nil, err
	}

	// 4. Сохраняем
	if err := s.persist(ctx, working); err != nil {
		s.logger.Error("Edit: failed to persist schedule: %v", err)
		s.metrics.ScheduleSaved(string(models.SaveStatusStoreError))
		return nil, fmt.Errorf("%w: Edit - persist: %v", ErrInternal, err)
	}

	s.afterSave(ctx, identity, working)

	s.logger.Info("Edit: schedule updated by user=%s", identity.ID)
	return working, nil
}

func (s *Service) checkAdmin(ctx context.Context) (*domain.Identity, models.AdminStatus) {
	identity := s.identities.CurrentIdentity(ctx)
	if identity == nil {
		return nil, models.AdminStatus{Message: msgNotAuthenticated}
	}

	isAdmin, err := s.authz.IsAdmin(ctx, *identity)
	if err != nil {
		if errors.Is(err, access.ErrUserRecordNotFound) {
			return identity, models.AdminStatus{Authenticated: true, Message: msgUserRecordNotFound}
		}
		s.logger.Error("VerifyAdminStatus: admin check failed for user=%s: %v", identity.ID, err)
		return identity, models.AdminStatus{Authenticated: true, Message: msgAdminCheckFailed}
	}

	if !isAdmin {
		return identity, models.AdminStatus{Authenticated: true, Message: msgNotAdmin}
	}

	return identity, models.AdminStatus{IsAdmin: true, Authenticated: true, Message: msgAdminConfirmed}
}

// readStore читает все дни и упорядочивает их по номеру в ключе day-N
func (s *Service) readStore(ctx context.Context) (domain.WeeklySchedule, error) {
	stored, err := s.repo.ListDays(ctx)
	if err != nil {
		return nil, err
	}

	// ключи без номера уходят в конец в порядке хранилища
	sort.SliceStable(stored, func(i, j int) bool {
		return dayOrder(stored[i].Key) < dayOrder(stored[j].Key)
	})

	schedule := make(domain.WeeklySchedule, len(stored))
	for i, d := range stored {
		schedule[i] = d.Day
	}
	return schedule, nil
}

// persist сбрасывает кэш до первой записи и ещё раз по выходу, в том числе
// при ошибке: частично записанное хранилище не должно прятаться за старым кэшем.
func (s *Service) persist(ctx context.Context, schedule domain.WeeklySchedule) error {
	s.invalidateCache(ctx)
	defer s.invalidateCache(ctx)

	existing, err := s.repo.ListDays(ctx)
	if err != nil {
		return err
	}

	for _, d := range existing {
		if err := s.repo.DeleteDay(ctx, d.Key); err != nil {
			return err
		}
	}

	for i, day := range schedule {
		if err := s.repo.WriteDay(ctx, domain.DayKey(i), day); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) afterSave(ctx context.Context, identity *domain.Identity, schedule domain.WeeklySchedule) {
	s.metrics.ScheduleSaved(string(models.SaveStatusSaved))

	if s.publisher == nil {
		return
	}

	workDays := make([]int, 0, len(schedule))
	for i, day := range schedule {
		if day.IsWorkDay {
			workDays = append(workDays, i)
		}
	}

	event := events.ScheduleUpdated{
		UpdatedBy: identity.ID,
		WorkDays:  workDays,
		Days:      len(schedule),
		UpdatedAt: s.clock.Now().UTC(),
	}
	if err := s.publisher.PublishScheduleUpdated(ctx, event); err != nil {
		s.logger.Warn("afterSave: failed to publish schedule.updated: %v", err)
	}
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("persist: cache invalidation failed: %v", err)
	}
}

func dayOrder(key string) int {
	n, ok := domain.ParseDayKey(key)
	if !ok {
		return math.MaxInt
	}
	return n
}
