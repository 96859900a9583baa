package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
)

// Redis wraps the go-redis client backing the reference-list cache.
type Redis struct {
	Client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis using the provided configuration. An unreachable
// cache is a warning; callers fall through to the database.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client, ttl: cfg.ReferenceTTL()}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// GetList reads a cached string list.
func (r *Redis) GetList(ctx context.Context, key string) ([]string, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("redis client not configured")
	}
	values, err := r.Client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, redis.Nil
	}
	return values, nil
}

// SetList stores a string list under the configured TTL. An empty list is not
// cached so a miss stays distinguishable.
func (r *Redis) SetList(ctx context.Context, key string, values []string) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	if len(values) == 0 {
		return nil
	}
	pipe := r.Client.TxPipeline()
	pipe.Del(ctx, key)
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	pipe.RPush(ctx, key, args...)
	pipe.Expire(ctx, key, r.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// IsCacheMiss reports whether err is a miss rather than a cache failure.
func IsCacheMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}
