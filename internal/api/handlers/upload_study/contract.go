package upload_study

import (
	"context"
	"io"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
)

type StudyService interface {
	Upload(ctx context.Context, req *models.UploadRequest, content io.Reader) (*models.StudyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
