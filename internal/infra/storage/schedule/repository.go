package schedule

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Repository хранит дни недели документами day-0..day-6 в коллекции schedule
type Repository struct {
	store DocumentStore
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(store DocumentStore) *Repository {
	return &Repository{store: store}
}

// ListDays возвращает все сохранённые дни в порядке хранилища
func (r *Repository) ListDays(ctx context.Context) ([]domain.StoredDay, error) {
	docs, err := r.store.List(ctx, domain.ScheduleCollection)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDays: %v", ErrReadStore, err)
	}

	days := make([]domain.StoredDay, 0, len(docs))
	for _, doc := range docs {
		var day domain.DaySchedule
		if err := json.Unmarshal(doc.Body, &day); err != nil {
			return nil, fmt.Errorf("%w: ListDays - key=%s: %v", ErrDecode, doc.Key, err)
		}
		if day.TimeRanges == nil {
			day.TimeRanges = []domain.TimeRange{}
		}
		days = append(days, domain.StoredDay{Key: doc.Key, Day: day})
	}

	return days, nil
}

// DeleteDay удаляет документ дня по ключу
func (r *Repository) DeleteDay(ctx context.Context, key string) error {
	if err := r.store.Delete(ctx, domain.ScheduleCollection, key); err != nil {
		return fmt.Errorf("%w: DeleteDay - key=%s: %v", ErrDeleteStore, key, err)
	}
	return nil
}

// WriteDay записывает документ дня под ключом
func (r *Repository) WriteDay(ctx context.Context, key string, day domain.DaySchedule) error {
	// пустой список диапазонов сохраняем как [], а не null
	if day.TimeRanges == nil {
		day.TimeRanges = []domain.TimeRange{}
	}

	body, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("%w: WriteDay - key=%s: %v", ErrEncode, key, err)
	}

	if err := r.store.Put(ctx, domain.ScheduleCollection, key, body); err != nil {
		return fmt.Errorf("%w: WriteDay - key=%s: %v", ErrWriteStore, key, err)
	}
	return nil
}
