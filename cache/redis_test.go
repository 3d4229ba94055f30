package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jsnacademy/trb-prep-api/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client), mr
}

func TestGetMaterialsHit(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	materials := []models.Material{
		{ID: 1, Title: "History Study Material", Category: models.CategoryUGTRB, Price: 450, IsActive: true},
		{ID: 2, Title: "Tamil Study Material", Category: models.CategoryUGTRB, Price: 300, IsActive: true},
	}
	data, _ := json.Marshal(materials)
	mr.Set(cacheKey("UG_TRB"), string(data))

	got, err := cache.GetMaterials(ctx, "UG_TRB")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "History Study Material", got[0].Title)
}

func TestGetMaterialsMiss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	got, err := cache.GetMaterials(context.Background(), "PG_TRB")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestGetMaterialsCorruptEntry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Set(cacheKey("UG_TRB"), "not-json")

	_, err := cache.GetMaterials(context.Background(), "UG_TRB")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestSetMaterialsAppliesTTL(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	materials := []models.Material{{ID: 1, Title: "Mock Test Pack", Price: 199, IsActive: true}}
	require.NoError(t, cache.SetMaterials(ctx, "", materials))

	assert.True(t, mr.Exists(cacheKey("")))
	assert.Greater(t, mr.TTL(cacheKey("")).Minutes(), 0.0)

	got, err := cache.GetMaterials(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Mock Test Pack", got[0].Title)
}

func TestInvalidateDropsAllListings(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.SetMaterials(ctx, "", nil))
	require.NoError(t, cache.SetMaterials(ctx, "UG_TRB", nil))
	mr.Set("other:key", "kept")

	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists(cacheKey("")))
	assert.False(t, mr.Exists(cacheKey("UG_TRB")))
	assert.True(t, mr.Exists("other:key"))
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "materials:all", cacheKey(""))
	assert.Equal(t, "materials:UG_TRB", cacheKey("UG_TRB"))
}
