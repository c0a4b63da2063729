package schedule

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/events"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListDays(ctx context.Context) ([]domain.StoredDay, error) {
	args := m.Called(ctx)
	days, _ := args.Get(0).([]domain.StoredDay)
	return days, args.Error(1)
}

func (m *mockRepository) DeleteDay(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRepository) WriteDay(ctx context.Context, key string, day domain.DaySchedule) error {
	return m.Called(ctx, key, day).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context) (domain.WeeklySchedule, bool, error) {
	args := m.Called(ctx)
	schedule, _ := args.Get(0).(domain.WeeklySchedule)
	return schedule, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, schedule domain.WeeklySchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishScheduleUpdated(ctx context.Context, event events.ScheduleUpdated) error {
	return m.Called(ctx, event).Error(0)
}

type mockAuthz struct {
	mock.Mock
}

func (m *mockAuthz) IsAdmin(ctx context.Context, identity domain.Identity) (bool, error) {
	args := m.Called(ctx, identity)
	return args.Bool(0), args.Error(1)
}

// staticIdentity всегда возвращает одну и ту же идентичность (или nil)
type staticIdentity struct {
	identity *domain.Identity
}

func (s staticIdentity) CurrentIdentity(context.Context) *domain.Identity {
	return s.identity
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
