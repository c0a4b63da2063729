// Package firestore is a docstore driver over Cloud Firestore, the store the
// web client reads the schedule and user records from.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/goccy/go-json"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

var (
	ErrQuery  = errors.New("docstore.firestore: query failed")
	ErrDecode = errors.New("docstore.firestore: failed to decode document")
	ErrEncode = errors.New("docstore.firestore: failed to encode document")
)

type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("%w: List - get all: %v", ErrQuery, err)
	}

	docs := make([]docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		body, err := json.Marshal(snap.Data())
		if err != nil {
			return nil, fmt.Errorf("%w: List - key=%s: %v", ErrDecode, snap.Ref.ID, err)
		}
		docs = append(docs, docstore.Document{Key: snap.Ref.ID, Body: body})
	}
	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, key string) (*docstore.Document, error) {
	snap, err := s.client.Collection(collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrQuery, key, err)
	}

	body, err := json.Marshal(snap.Data())
	if err != nil {
		return nil, fmt.Errorf("%w: Get - key=%s: %v", ErrDecode, key, err)
	}
	return &docstore.Document{Key: key, Body: body}, nil
}

func (s *Store) Put(ctx context.Context, collection, key string, body []byte) error {
	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return fmt.Errorf("%w: Put - key=%s: %v", ErrEncode, key, err)
	}

	if _, err := s.client.Collection(collection).Doc(key).Set(ctx, data); err != nil {
		return fmt.Errorf("%w: Put - key=%s: %v", ErrQuery, key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.client.Collection(collection).Doc(key).Delete(ctx); err != nil {
		return fmt.Errorf("%w: Delete - key=%s: %v", ErrQuery, key, err)
	}
	return nil
}
