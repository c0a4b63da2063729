package list_studies

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/studies/models"
)

type StudyService interface {
	List(ctx context.Context, ownerID string) (*models.StudyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
