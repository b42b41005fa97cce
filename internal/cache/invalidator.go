package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Invalidator marks named presentation views as stale after successful
// writes. The presentation layer owns the view contents; the store only
// knows the view names.
type Invalidator interface {
	Invalidate(ctx context.Context, views ...string)
}

// RedisInvalidator drops cached view payloads from redis.
type RedisInvalidator struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisInvalidator connects to redis and returns an invalidator backed by it.
func NewRedisInvalidator(addr, password string, db int, log *zap.Logger) (*RedisInvalidator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisInvalidator{client: client, log: log}, nil
}

// Invalidate deletes the cached payload for each view. Invalidation is best
// effort: a failed delete is logged and the write that triggered it stands.
func (r *RedisInvalidator) Invalidate(ctx context.Context, views ...string) {
	if len(views) == 0 {
		return
	}
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = "view:" + v
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn("Failed to invalidate cached views",
			zap.Strings("views", views),
			zap.Error(err))
	}
}

// Close releases the underlying redis connection.
func (r *RedisInvalidator) Close() error {
	return r.client.Close()
}

// Noop discards invalidation signals. Used when no cache is configured and in
// tests.
type Noop struct{}

// Invalidate implements Invalidator.
func (Noop) Invalidate(context.Context, ...string) {}
