package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore/memory"
)

func TestRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memory.New())

	created := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	user := &domain.UserRecord{
		UID:       "uid-1",
		Email:     "ana@example.com",
		IsAdmin:   true,
		Profile:   domain.UserProfile{FullName: "Ana", BloodType: "O+"},
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, repo.Save(ctx, user))

	got, err := repo.GetUserRecord(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestRepository_GetUserRecord_NotFound(t *testing.T) {
	_, err := NewRepository(memory.New()).GetUserRecord(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_GetUserRecord_UIDFromKey(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(ctx, domain.UsersCollection, "uid-2", []byte(`{"email":"b@example.com","isAdmin":true}`)))

	got, err := NewRepository(store).GetUserRecord(ctx, "uid-2")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", got.UID)
	assert.True(t, got.IsAdmin)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memory.New())

	require.NoError(t, repo.Save(ctx, &domain.UserRecord{UID: "a", Email: "a@example.com"}))
	require.NoError(t, repo.Save(ctx, &domain.UserRecord{UID: "b", Email: "b@example.com"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
