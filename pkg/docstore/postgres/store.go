package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const table = "documents"

// Schema таблица документов: одна строка на (collection, doc_key)
const Schema = `CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	doc_key    TEXT        NOT NULL,
	body       JSONB       NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, doc_key)
)`

// DBExecutor общий интерфейс *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Store хранилище документов поверх PostgreSQL (jsonb)
type Store struct {
	db DBExecutor
}

// NewStore создает хранилище документов PostgreSQL
func NewStore(db DBExecutor) *Store {
	return &Store{db: db}
}

// Migrate создает таблицу документов, если её нет
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("%w: Migrate - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// List возвращает все документы коллекции без гарантий порядка
func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	query, args, err := psqlbuilder.Select("doc_key", "body").
		From(table).
		Where(squirrel.Eq{"collection": collection}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		var doc docstore.Document
		if err := rows.Scan(&doc.Key, &doc.Body); err != nil {
			return nil, fmt.Errorf("%w: List - scan document: %v", ErrScanRow, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

// Get возвращает документ по ключу
func (s *Store) Get(ctx context.Context, collection, key string) (*docstore.Document, error) {
	query, args, err := psqlbuilder.Select("doc_key", "body").
		From(table).
		Where(squirrel.Eq{"collection": collection, "doc_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var doc docstore.Document
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&doc.Key, &doc.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %v", ErrScanRow, err)
	}

	return &doc, nil
}

// Put создает или заменяет документ
func (s *Store) Put(ctx context.Context, collection, key string, body []byte) error {
	// body передаётся строкой: []byte драйвер pq кодирует как bytea
	query, args, err := psqlbuilder.Insert(table).
		Columns("collection", "doc_key", "body").
		Values(collection, key, string(body)).
		Suffix("ON CONFLICT (collection, doc_key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Put - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Put - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет документ; отсутствие документа ошибкой не считается
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"collection": collection, "doc_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
