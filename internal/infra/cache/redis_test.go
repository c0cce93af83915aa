package cache

import (
	"context"
	"testing"
	"time"

	"grocery/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (service.Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache(client), server
}

func TestRedisCache_SetGet(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithExpiration(ctx, "refreshToken:abc", "token-1", time.Hour))

	got, err := cache.Get(ctx, "refreshToken:abc")
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)
	assert.Equal(t, time.Hour, server.TTL("refreshToken:abc"))
}

func TestRedisCache_SetOverwrites(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithExpiration(ctx, "k", "first", time.Hour))
	require.NoError(t, cache.SetWithExpiration(ctx, "k", "second", time.Hour))

	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestRedisCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_Expired(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithExpiration(ctx, "k", "v", time.Minute))
	server.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetWithExpiration(ctx, "k", "v", time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))
	require.NoError(t, cache.Delete(ctx, "k"))

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisCache_Unavailable(t *testing.T) {
	cache, server := newTestCache(t)
	server.Close()

	_, err := cache.Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestHealthChecker(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	checker := NewHealthChecker(client)
	assert.Equal(t, "redis", checker.Name())
	require.NoError(t, checker.Check(context.Background()))

	server.Close()
	assert.Error(t, checker.Check(context.Background()))
}
