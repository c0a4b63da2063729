// Package docstore describes a minimal keyed JSON document store.
//
// Documents live in named collections and are addressed by string keys.
// Bodies are JSON objects; drivers store them natively (jsonb, BSON,
// Firestore maps) and hand them back as JSON. List makes no ordering
// promise.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document has the requested key.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a single stored JSON object.
type Document struct {
	Key  string
	Body []byte
}

// Store is implemented by every driver.
type Store interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, key string) (*Document, error)
	// Put creates or replaces the document.
	Put(ctx context.Context, collection, key string, body []byte) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, collection, key string) error
}
