// Package mongo is a docstore driver over MongoDB: one collection per
// docstore collection, documents shaped {_id: key, body: {...}}.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

var (
	ErrQuery  = errors.New("docstore.mongo: query failed")
	ErrDecode = errors.New("docstore.mongo: failed to decode document")
	ErrEncode = errors.New("docstore.mongo: failed to encode document")
)

type record struct {
	Key  string   `bson:"_id"`
	Body bson.Raw `bson:"body"`
}

type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: List - find: %v", ErrQuery, err)
	}
	defer cur.Close(ctx)

	docs := make([]docstore.Document, 0)
	for cur.Next(ctx) {
		var rec record
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: List - decode: %v", ErrDecode, err)
		}
		doc, err := toDocument(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - cursor: %v", ErrQuery, err)
	}

	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, key string) (*docstore.Document, error) {
	var rec record
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - find one: %v", ErrQuery, err)
	}

	doc, err := toDocument(rec)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) Put(ctx context.Context, collection, key string, body []byte) error {
	var fields bson.D
	if err := bson.UnmarshalExtJSON(body, false, &fields); err != nil {
		return fmt.Errorf("%w: Put - body to bson: %v", ErrEncode, err)
	}

	_, err := s.db.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": key},
		bson.D{{Key: "_id", Value: key}, {Key: "body", Value: fields}},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: Put - replace one: %v", ErrQuery, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("%w: Delete - delete one: %v", ErrQuery, err)
	}
	return nil
}

func toDocument(rec record) (docstore.Document, error) {
	body, err := bson.MarshalExtJSON(rec.Body, false, false)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("%w: key=%s: %v", ErrDecode, rec.Key, err)
	}
	return docstore.Document{Key: rec.Key, Body: body}, nil
}
