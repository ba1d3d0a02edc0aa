package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"retirement-calc/logger"
)

// RedisOptions configures the Redis-backed result cache.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	// Logger receives read failures; nil discards them.
	Logger   *logger.Logger
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewRedisCache(opts RedisOptions) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &RedisCache{
		client: rdb,
		ttl:    opts.TTL,
		log:    log,
	}
}

// Ping checks that the server is reachable.
func (r *RedisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", r.client.Options().Addr, err)
	}
	return nil
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.WarnContext(ctx, "redis get failed",
				logger.FieldCacheKey, key, logger.FieldError, err)
		}
		return "", false
	}
	return val, true
}

// Set stores value under key; a zero TTL keeps it until evicted.
func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// TTL returns the expiration applied to stored results.
func (r *RedisCache) TTL() time.Duration {
	return r.ttl
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
