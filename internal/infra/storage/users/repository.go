package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/docstore"
)

// Repository записи пользователей в коллекции users, ключ = uid
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// GetUserRecord получает запись пользователя по uid
func (r *Repository) GetUserRecord(ctx context.Context, uid string) (*domain.UserRecord, error) {
	doc, err := r.store.Get(ctx, domain.UsersCollection, uid)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserRecord - uid=%s: %v", ErrReadStore, uid, err)
	}

	var user domain.UserRecord
	if err := json.Unmarshal(doc.Body, &user); err != nil {
		return nil, fmt.Errorf("%w: GetUserRecord - uid=%s: %v", ErrDecode, uid, err)
	}
	if user.UID == "" {
		user.UID = uid
	}

	return &user, nil
}

// Save создает или заменяет запись пользователя
func (r *Repository) Save(ctx context.Context, user *domain.UserRecord) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: Save - uid=%s: %v", ErrEncode, user.UID, err)
	}

	if err := r.store.Put(ctx, domain.UsersCollection, user.UID, body); err != nil {
		return fmt.Errorf("%w: Save - uid=%s: %v", ErrWriteStore, user.UID, err)
	}
	return nil
}

// List возвращает все записи пользователей без гарантий порядка
func (r *Repository) List(ctx context.Context) ([]*domain.UserRecord, error) {
	docs, err := r.store.List(ctx, domain.UsersCollection)
	if err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrReadStore, err)
	}

	users := make([]*domain.UserRecord, 0, len(docs))
	for _, doc := range docs {
		var user domain.UserRecord
		if err := json.Unmarshal(doc.Body, &user); err != nil {
			return nil, fmt.Errorf("%w: List - uid=%s: %v", ErrDecode, doc.Key, err)
		}
		if user.UID == "" {
			user.UID = doc.Key
		}
		users = append(users, &user)
	}

	return users, nil
}
