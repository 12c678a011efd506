// Package counter provides the service's hit counter. The counter either
// lives in Redis or is unavailable; which one is decided once at startup.
package counter

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned by a Store that has no cache behind it.
var ErrUnavailable = errors.New("counter cache unavailable")

// Store increments a counter and returns its new value.
type Store interface {
	// Increment atomically adds one to the counter and returns the new value.
	Increment(ctx context.Context) (int64, error)
	// Enabled reports whether a cache was configured at startup.
	Enabled() bool
}

// RedisStore keeps the counter under a single Redis key.
type RedisStore struct {
	rdb redis.Cmdable
	key string
}

// NewRedisStore returns a Store backed by rdb. rdb must not be nil.
func NewRedisStore(rdb redis.Cmdable, key string) *RedisStore {
	if rdb == nil {
		panic("nil redis client passed to NewRedisStore")
	}
	return &RedisStore{rdb: rdb, key: key}
}

// Increment runs INCR on the counter key.
func (s *RedisStore) Increment(ctx context.Context) (int64, error) {
	n, err := s.rdb.Incr(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", s.key, err)
	}
	return n, nil
}

// Enabled always reports true.
func (s *RedisStore) Enabled() bool { return true }

// Key returns the Redis key the counter is stored under.
func (s *RedisStore) Key() string { return s.key }

// Disabled is the Store used when no cache is configured.
type Disabled struct{}

// Increment always fails with ErrUnavailable.
func (Disabled) Increment(context.Context) (int64, error) { return 0, ErrUnavailable }

// Enabled always reports false.
func (Disabled) Enabled() bool { return false }
