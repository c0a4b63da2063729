package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// UploadRequest загрузка файла исследования
type UploadRequest struct {
	OwnerID     string
	FileName    string
	Size        int64
	ContentType string
}

// StudyResponse файл исследования в ответе API
type StudyResponse struct {
	Name        string          `json:"name"`
	Path        string          `json:"path"`
	Type        domain.FileType `json:"type"`
	Size        int64           `json:"size"`
	UploadedAt  *time.Time      `json:"uploadedAt,omitempty"`
	DownloadURL string          `json:"downloadUrl"`
}

// StudyListResponse список файлов
type StudyListResponse struct {
	Studies []*StudyResponse `json:"studies"`
	Total   int              `json:"total"`
}

// FromDomainStudy конвертирует файл исследования в ответ API
func FromDomainStudy(study *domain.StudyFile) *StudyResponse {
	resp := &StudyResponse{
		Name:        study.Name,
		Path:        study.Path,
		Type:        study.Type,
		Size:        study.Size,
		DownloadURL: study.DownloadURL,
	}
	if !study.UploadedAt.IsZero() {
		uploaded := study.UploadedAt
		resp.UploadedAt = &uploaded
	}
	return resp
}
