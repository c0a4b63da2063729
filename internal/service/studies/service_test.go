package studies

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	blob "github.com/m04kA/SMC-AvailabilityService/internal/infra/blob/minio"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockBlobStore struct {
	mock.Mock
}

func (m *mockBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, r, size, contentType).Error(0)
}

func (m *mockBlobStore) List(ctx context.Context, prefix string) ([]blob.Object, error) {
	args := m.Called(ctx, prefix)
	objects, _ := args.Get(0).([]blob.Object)
	return objects, args.Error(1)
}

func (m *mockBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockBlobStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

const expiry = 15 * time.Minute

func newService(blobs BlobStore) *Service {
	return NewService(blobs, 1024, expiry, logger.NewNop())
}

func TestUpload(t *testing.T) {
	blobs := &mockBlobStore{}
	content := strings.NewReader("%PDF-1.4")
	blobs.On("Put", mock.Anything, "studies/uid-1/analitica.pdf", content, int64(8), "application/pdf").Return(nil)
	blobs.On("PresignedURL", mock.Anything, "studies/uid-1/analitica.pdf", expiry).Return("https://files/analitica.pdf?sig", nil)

	resp, err := newService(blobs).Upload(context.Background(), &models.UploadRequest{
		OwnerID:  "uid-1",
		FileName: "analitica.pdf",
		Size:     8,
	}, content)
	require.NoError(t, err)

	assert.Equal(t, "analitica.pdf", resp.Name)
	assert.Equal(t, domain.FileTypePDF, resp.Type)
	assert.Equal(t, "https://files/analitica.pdf?sig", resp.DownloadURL)
	blobs.AssertExpectations(t)
}

func TestUpload_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  models.UploadRequest
		want error
	}{
		{"path traversal", models.UploadRequest{FileName: "../x.pdf", Size: 1}, ErrInvalidFileName},
		{"empty name", models.UploadRequest{FileName: " ", Size: 1}, ErrInvalidFileName},
		{"executable", models.UploadRequest{FileName: "virus.exe", Size: 1}, ErrUnsupportedFileType},
		{"gif not allowed", models.UploadRequest{FileName: "a.gif", Size: 1}, ErrUnsupportedFileType},
		{"empty file", models.UploadRequest{FileName: "a.txt", Size: 0}, ErrEmptyFile},
		{"too large", models.UploadRequest{FileName: "a.png", Size: 2048}, ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blobs := &mockBlobStore{}
			req := tt.req
			req.OwnerID = "uid-1"

			_, err := newService(blobs).Upload(context.Background(), &req, strings.NewReader("x"))

			assert.ErrorIs(t, err, tt.want)
			blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestList(t *testing.T) {
	blobs := &mockBlobStore{}
	uploaded := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	blobs.On("List", mock.Anything, "studies/uid-1/").Return([]blob.Object{
		{Key: "studies/uid-1/rx.png", Size: 10, LastModified: uploaded},
		{Key: "studies/uid-1/nested/", Size: 0},
		{Key: "studies/uid-1/analitica.pdf", Size: 20, LastModified: uploaded},
	}, nil)
	blobs.On("PresignedURL", mock.Anything, mock.Anything, expiry).Return("https://signed", nil)

	resp, err := newService(blobs).List(context.Background(), "uid-1")
	require.NoError(t, err)

	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "analitica.pdf", resp.Studies[0].Name)
	assert.Equal(t, domain.FileTypePDF, resp.Studies[0].Type)
	assert.Equal(t, "rx.png", resp.Studies[1].Name)
	assert.Equal(t, domain.FileTypeImage, resp.Studies[1].Type)
	assert.Equal(t, uploaded, *resp.Studies[1].UploadedAt)
}

func TestList_StoreError(t *testing.T) {
	blobs := &mockBlobStore{}
	blobs.On("List", mock.Anything, "studies/uid-1/").Return(nil, errors.New("s3 down"))

	_, err := newService(blobs).List(context.Background(), "uid-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDelete(t *testing.T) {
	blobs := &mockBlobStore{}
	blobs.On("Exists", mock.Anything, "studies/uid-1/rx.png").Return(true, nil)
	blobs.On("Delete", mock.Anything, "studies/uid-1/rx.png").Return(nil)
	blobs.On("Exists", mock.Anything, "studies/uid-1/missing.png").Return(false, nil)

	svc := newService(blobs)

	require.NoError(t, svc.Delete(context.Background(), "uid-1", "rx.png"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "uid-1", "missing.png"), ErrStudyNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "uid-1", "a/b.png"), ErrInvalidFileName)
	blobs.AssertNumberOfCalls(t, "Delete", 1)
}
