package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-api/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestCacheRepository_SetGetDelete(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisForTest(client, zap.NewNop()))
	ctx := context.Background()
	key := "test:cache:item"
	defer client.Del(ctx, key)

	val, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val, "missing key is a cache miss, not an error")

	require.NoError(t, repo.Set(ctx, key, []byte("value"), time.Minute))

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), val)

	require.NoError(t, repo.Delete(ctx, key))

	val, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_DeleteByPrefix(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisForTest(client, zap.NewNop()))
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		require.NoError(t, repo.Set(ctx, fmt.Sprintf("test:prefix:%d", i), []byte("x"), time.Minute))
	}
	require.NoError(t, repo.Set(ctx, "test:other", []byte("y"), time.Minute))
	defer client.Del(ctx, "test:other")

	require.NoError(t, repo.DeleteByPrefix(ctx, "test:prefix:"))

	keys, err := client.Keys(ctx, "test:prefix:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys)

	val, err := repo.Get(ctx, "test:other")
	require.NoError(t, err)
	assert.Equal(t, []byte("y"), val)
}
