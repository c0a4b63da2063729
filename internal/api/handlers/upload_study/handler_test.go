package upload_study

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type fakeService struct {
	err     error
	calls   int
	req     *models.UploadRequest
	content []byte
}

func (f *fakeService) Upload(_ context.Context, req *models.UploadRequest, content io.Reader) (*models.StudyResponse, error) {
	f.calls++
	f.req = req
	f.content, _ = io.ReadAll(content)
	if f.err != nil {
		return nil, f.err
	}
	return &models.StudyResponse{
		Name: req.FileName,
		Path: "studies/" + req.OwnerID + "/" + req.FileName,
		Type: domain.FileTypeText,
		Size: req.Size,
	}, nil
}

func multipartBody(t *testing.T, field, name, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func doRequest(h *Handler, body io.Reader, contentType string, identity *domain.Identity) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/me/studies", body)
	req.Header.Set("Content-Type", contentType)
	if identity != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), identity))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

var owner = &domain.Identity{ID: "user-1"}

func TestHandle_Uploads(t *testing.T) {
	svc := &fakeService{}
	body, ct := multipartBody(t, FormField, "notes.txt", "text/plain", []byte("hello"))

	rec := doRequest(NewHandler(svc, logger.NewNop(), 1<<20), body, ct, owner)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, &models.UploadRequest{OwnerID: "user-1", FileName: "notes.txt", Size: 5, ContentType: "text/plain"}, svc.req)
	assert.Equal(t, []byte("hello"), svc.content)
	assert.Contains(t, rec.Body.String(), `"path":"studies/user-1/notes.txt"`)
}

func TestHandle_RejectsOversizedBodyBeforeParsing(t *testing.T) {
	svc := &fakeService{}
	body, ct := multipartBody(t, FormField, "scan.pdf", "application/pdf", bytes.Repeat([]byte("x"), 2<<20))

	rec := doRequest(NewHandler(svc, logger.NewNop(), 16), body, ct, owner)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, 0, svc.calls)
}

func TestHandle_RequestErrors(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		svc := &fakeService{}
		body, ct := multipartBody(t, FormField, "notes.txt", "text/plain", []byte("hello"))

		rec := doRequest(NewHandler(svc, logger.NewNop(), 1<<20), body, ct, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("wrong field", func(t *testing.T) {
		svc := &fakeService{}
		body, ct := multipartBody(t, "document", "notes.txt", "text/plain", []byte("hello"))

		rec := doRequest(NewHandler(svc, logger.NewNop(), 1<<20), body, ct, owner)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, svc.calls)
	})

	t.Run("not multipart", func(t *testing.T) {
		svc := &fakeService{}

		rec := doRequest(NewHandler(svc, logger.NewNop(), 1<<20), bytes.NewBufferString(`{}`), "application/json", owner)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, svc.calls)
	})
}

func TestHandle_ServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid name", studies.ErrInvalidFileName, http.StatusBadRequest},
		{"unsupported type", studies.ErrUnsupportedFileType, http.StatusBadRequest},
		{"empty file", studies.ErrEmptyFile, http.StatusBadRequest},
		{"too large", studies.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"storage down", studies.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			body, ct := multipartBody(t, FormField, "notes.txt", "text/plain", []byte("hello"))

			rec := doRequest(NewHandler(svc, logger.NewNop(), 1<<20), body, ct, owner)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, 1, svc.calls)
		})
	}
}
