package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	usersRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/access"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore/memory"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	created = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	now     = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
)

func newService(t *testing.T) (*Service, *usersRepo.Repository) {
	t.Helper()
	ctx := context.Background()

	repo := usersRepo.NewRepository(memory.New())
	require.NoError(t, repo.Save(ctx, &domain.UserRecord{UID: "admin", Email: "zoe@example.com", IsAdmin: true, CreatedAt: created}))
	require.NoError(t, repo.Save(ctx, &domain.UserRecord{UID: "p1", Email: "Ana@example.com", CreatedAt: created}))
	require.NoError(t, repo.Save(ctx, &domain.UserRecord{UID: "p2", Email: "bruno@example.com", CreatedAt: created}))

	svc := NewService(repo, access.NewPolicy(repo, logger.NewNop()), fixedClock{now: now}, logger.NewNop())
	return svc, repo
}

func ptr(s string) *string { return &s }

func TestGetCurrent(t *testing.T) {
	svc, _ := newService(t)

	user, err := svc.GetCurrent(context.Background(), domain.Identity{ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana@example.com", user.Email)

	_, err = svc.GetCurrent(context.Background(), domain.Identity{ID: "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_PreservesAdminFlag(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	resp, err := svc.UpdateProfile(ctx, domain.Identity{ID: "admin"}, &models.UpdateProfileRequest{
		DisplayName: ptr("  Zoe  "),
		Profile:     domain.UserProfile{FullName: "Zoe Díaz", Phone: "+34 600 000 000"},
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
	assert.Equal(t, "Zoe", resp.DisplayName)

	stored, err := repo.GetUserRecord(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
	assert.Equal(t, created, stored.CreatedAt)
	assert.Equal(t, now, stored.UpdatedAt)
	assert.Equal(t, "Zoe Díaz", stored.Profile.FullName)
}

func TestUpdateProfile_CreatesMissingRecordAsNonAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	resp, err := svc.UpdateProfile(ctx, domain.Identity{ID: "new", Email: "new@example.com"}, &models.UpdateProfileRequest{
		Profile: domain.UserProfile{BloodType: "A+"},
	})
	require.NoError(t, err)
	assert.False(t, resp.IsAdmin)
	assert.Equal(t, "new@example.com", resp.Email)

	stored, err := repo.GetUserRecord(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, now, stored.CreatedAt)
	assert.Equal(t, "A+", stored.Profile.BloodType)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	resp, err := svc.List(ctx, domain.Identity{ID: "admin"})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{"Ana@example.com", "bruno@example.com", "zoe@example.com"},
		[]string{resp.Users[0].Email, resp.Users[1].Email, resp.Users[2].Email})

	_, err = svc.List(ctx, domain.Identity{ID: "p1"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.List(ctx, domain.Identity{ID: "ghost"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t)

	require.NoError(t, svc.SetAdmin(ctx, "p2", true))
	stored, err := repo.GetUserRecord(ctx, "p2")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)

	assert.ErrorIs(t, svc.SetAdmin(ctx, "ghost", true), ErrUserNotFound)
}
