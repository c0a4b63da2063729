package users

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

// DocumentStore порт хранилища документов
type DocumentStore interface {
	List(ctx context.Context, collection string) ([]docstore.Document, error)
	Get(ctx context.Context, collection, key string) (*docstore.Document, error)
	Put(ctx context.Context, collection, key string, body []byte) error
}
