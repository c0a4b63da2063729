package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Key ключ, под которым хранится недельное расписание
const Key = "availability:schedule:weekly"

// Cache кэш последнего успешно прочитанного расписания
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш расписания; ttl <= 0 означает хранение без срока
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает расписание из кэша; found=false при промахе
func (c *Cache) Get(ctx context.Context) (domain.WeeklySchedule, bool, error) {
	raw, err := c.client.Get(ctx, Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	var schedule domain.WeeklySchedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return schedule, true, nil
}

// Set сохраняет расписание
func (c *Cache) Set(ctx context.Context, schedule domain.WeeklySchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	ttl := c.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, Key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCache, err)
	}
	return nil
}

// Invalidate удаляет расписание из кэша
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, Key).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}
