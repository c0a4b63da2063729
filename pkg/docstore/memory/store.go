// Package memory is an in-process docstore driver for local runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

func New() *Store {
	return &Store{collections: make(map[string]map[string][]byte)}
}

func (s *Store) List(_ context.Context, collection string) ([]docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]docstore.Document, 0, len(s.collections[collection]))
	for key, body := range s.collections[collection] {
		docs = append(docs, docstore.Document{Key: key, Body: clone(body)})
	}
	return docs, nil
}

func (s *Store) Get(_ context.Context, collection, key string) (*docstore.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.collections[collection][key]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return &docstore.Document{Key: key, Body: clone(body)}, nil
}

func (s *Store) Put(_ context.Context, collection, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string][]byte)
		s.collections[collection] = docs
	}
	docs[key] = clone(body)
	return nil
}

func (s *Store) Delete(_ context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
