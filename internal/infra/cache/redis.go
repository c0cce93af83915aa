// Package cache provides the Redis-backed key-value store used for refresh tokens.
package cache

import (
	"context"
	"log/slog"
	"time"

	"grocery/config"
	"grocery/internal/domain/lifecycle"
	"grocery/internal/domain/service"
	"grocery/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client and registers ping on start and close on stop.
func NewClient(params Params) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCache implements service.Cache on a Redis client.
type redisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a Redis client as a service.Cache.
func NewRedisCache(client *redis.Client) service.Cache {
	return &redisCache{client: client}
}

// SetWithExpiration stores value under key, replacing any previous value.
func (c *redisCache) SetWithExpiration(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

// Get returns the value of key or service.ErrCacheMiss.
func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrCacheMiss
		}

		return "", errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

// Delete removes key; deleting an absent key is not an error.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

// healthChecker pings Redis.
type healthChecker struct {
	client *redis.Client
}

// NewHealthChecker exposes Redis to the health endpoint.
func NewHealthChecker(client *redis.Client) service.HealthChecker {
	return &healthChecker{client: client}
}

func (h *healthChecker) Name() string {
	return "redis"
}

func (h *healthChecker) Check(ctx context.Context) error {
	return errors.WithStack(h.client.Ping(ctx).Err())
}
