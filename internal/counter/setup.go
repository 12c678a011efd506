package counter

import (
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/aspire-counter-api/internal/config"
)

// FromDescriptor resolves the startup cache configuration. It never fails:
// an empty or malformed descriptor yields a Disabled store. The returned
// client is nil unless a RedisStore was built; the caller owns closing it.
func FromDescriptor(descriptor, key string, logger *slog.Logger) (Store, *redis.Client) {
	ep, err := config.ParseDescriptor(descriptor)
	switch {
	case errors.Is(err, config.ErrEmptyDescriptor):
		logger.Info("cache not configured; counter disabled")
		return Disabled{}, nil
	case err != nil:
		logger.Warn("could not use cache descriptor; counter disabled", "error", err)
		return Disabled{}, nil
	}
	rdb := config.NewRedisClient(ep)
	logger.Info("counter backed by redis", "addr", ep.Addr(), "tls", ep.TLS, "key", key)
	return NewRedisStore(rdb, key), rdb
}
