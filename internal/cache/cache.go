package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/model"
)

// Cache holds the most recently fetched daily schedule per (city, date) in
// Redis. A new fetch overwrites the key; entries expire at local midnight,
// when the schedule they describe stops being "today".
type Cache struct {
	rdb *redis.Client
}

func New(address, username, password string) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     address,
			Username: username,
			Password: password,
			DB:       0,
		}),
	}
}

// Ping verifies connectivity at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func scheduleKey(cityID, date string) string {
	return fmt.Sprintf("schedule:%s:%s", cityID, date)
}

// SetSchedule stores the schedule under its (city, date) key with a TTL
// reaching the end of the day in now's location.
func (c *Cache) SetSchedule(ctx context.Context, s model.DailySchedule, now time.Time) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	ttl := midnight.Sub(now)
	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := c.rdb.Set(ctx, scheduleKey(s.CityID, s.Date), payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache schedule: %w", err)
	}
	log.Debug().Str("city_id", s.CityID).Str("date", s.Date).Dur("ttl", ttl).Msg("schedule cached")
	return nil
}

// GetSchedule returns the cached schedule for (city, date). The second return
// is false on a clean miss.
func (c *Cache) GetSchedule(ctx context.Context, cityID, date string) (model.DailySchedule, bool, error) {
	payload, err := c.rdb.Get(ctx, scheduleKey(cityID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.DailySchedule{}, false, nil
	}
	if err != nil {
		return model.DailySchedule{}, false, fmt.Errorf("read cached schedule: %w", err)
	}

	var s model.DailySchedule
	if err := json.Unmarshal(payload, &s); err != nil {
		return model.DailySchedule{}, false, fmt.Errorf("decode cached schedule: %w", err)
	}
	return s, true, nil
}
