package delete_study

import (
	"context"
)

type StudyService interface {
	Delete(ctx context.Context, ownerID, fileName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
