package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	t.Cleanup(func() {
		client.Del(context.Background(),
			domain.StatsCacheKey,
			domain.ListCacheKey(domain.KindMap, 0),
			domain.ListVersionKey(domain.KindMap),
		)
		client.Close()
	})
	return client
}

func TestCacheRepository_GetSetDelete(t *testing.T) {
	client := getTestRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()
	key := domain.ListCacheKey(domain.KindMap, 0)

	miss, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.Set(ctx, key, []byte(`[]`), time.Minute))
	hit, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), hit)

	require.NoError(t, repo.Delete(ctx, key, domain.StatsCacheKey))
	gone, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.NoError(t, repo.Delete(ctx))
}

func TestCacheRepository_ListVersion(t *testing.T) {
	client := getTestRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()
	key := domain.ListVersionKey(domain.KindMap)

	version, err := repo.Version(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)

	bumped, err := repo.BumpVersion(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bumped)

	version, err = repo.Version(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestCacheRepository_Stats(t *testing.T) {
	client := getTestRedisClient(t)
	repo := cache.NewCacheRepositoryWithClient(client, zap.NewNop())
	ctx := context.Background()

	stats := &domain.Statistics{
		MapPOIs:     2,
		Collections: 1,
		Total:       3,
		LastUpdated: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, repo.SetStats(ctx, stats, time.Minute))

	got, err := repo.GetStats(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, stats.Total, got.Total)
	assert.True(t, stats.LastUpdated.Equal(got.LastUpdated))
}

func TestNoopCacheRepository(t *testing.T) {
	repo := cache.NewNoopCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := repo.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, repo.SetStats(ctx, &domain.Statistics{Total: 1}, time.Minute))
	stats, err := repo.GetStats(ctx)
	assert.NoError(t, err)
	assert.Nil(t, stats)
	assert.NoError(t, repo.Delete(ctx, "k"))

	bumped, err := repo.BumpVersion(ctx, "ver")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), bumped)
}
