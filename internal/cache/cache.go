package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache is a short-TTL Redis cache for TMDB listing pages. It is
// strictly best-effort: misses and Redis failures fall through to the
// catalog, and a zero-value/nil cache is always disabled.
type PageCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at redisURL. An empty URL yields a disabled cache.
func New(redisURL string, ttl time.Duration, logger *slog.Logger) (*PageCache, error) {
	if redisURL == "" {
		return &PageCache{logger: logger}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &PageCache{
		rdb:    redis.NewClient(opts),
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Enabled reports whether a Redis backend is configured.
func (p *PageCache) Enabled() bool {
	return p != nil && p.rdb != nil
}

// Get decodes the cached value for key into result, reporting a hit.
func (p *PageCache) Get(ctx context.Context, key string, result interface{}) bool {
	if !p.Enabled() {
		return false
	}

	raw, err := p.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			p.logger.Debug("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, result); err != nil {
		p.logger.Debug("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores value under key with the configured TTL.
func (p *PageCache) Set(ctx context.Context, key string, value interface{}) {
	if !p.Enabled() {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := p.rdb.Set(ctx, key, raw, p.ttl).Err(); err != nil {
		p.logger.Debug("cache write failed", "key", key, "error", err)
	}
}

// Close releases the Redis connection.
func (p *PageCache) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.rdb.Close()
}
