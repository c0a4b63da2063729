package list_users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/users/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	result *models.UserListResponse
	err    error
	caller domain.Identity
	calls  int
}

func (f *fakeService) List(_ context.Context, identity domain.Identity) (*models.UserListResponse, error) {
	f.calls++
	f.caller = identity
	return f.result, f.err
}

func doRequest(svc *fakeService, identity *domain.Identity) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_ListsUsers(t *testing.T) {
	svc := &fakeService{result: &models.UserListResponse{
		Users: []*models.UserResponse{{UID: "u1", Email: "a@example.com", IsAdmin: true}, {UID: "u2"}},
		Total: 2,
	}}

	rec := doRequest(svc, &domain.Identity{ID: "u1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", svc.caller.ID)
	assert.Contains(t, rec.Body.String(), `"total":2`)
	assert.Contains(t, rec.Body.String(), `"uid":"u2"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		identity *domain.Identity
		err      error
		want     int
	}{
		{"anonymous", nil, nil, http.StatusUnauthorized},
		{"not admin", &domain.Identity{ID: "u2"}, users.ErrAccessDenied, http.StatusForbidden},
		{"store down", &domain.Identity{ID: "u1"}, users.ErrInternal, http.StatusInternalServerError},
		{"unexpected", &domain.Identity{ID: "u1"}, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}

			rec := doRequest(svc, tt.identity)

			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("anonymous never reaches the service", func(t *testing.T) {
		svc := &fakeService{}
		doRequest(svc, nil)
		assert.Equal(t, 0, svc.calls)
	})
}
