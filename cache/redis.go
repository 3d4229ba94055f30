package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/jsnacademy/trb-prep-api/models"
	"github.com/redis/go-redis/v9"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) GetMaterials(ctx context.Context, category string) ([]models.Material, error) {
	data, err := r.client.Get(ctx, cacheKey(category)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var materials []models.Material
	if err2 := json.Unmarshal(data, &materials); err2 != nil {
		return nil, fmt.Errorf("unmarshal materials failed: %w", err2)
	}

	return materials, nil
}

func (r RedisCache) SetMaterials(ctx context.Context, category string, materials []models.Material) error {
	data, err := json.Marshal(materials)
	if err != nil {
		return fmt.Errorf("marshal materials failed: %w", err)
	}

	// Jitter spreads out expiry so entries don't refill at once
	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := r.client.Set(ctx, cacheKey(category), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing; called after any admin write
// to the materials table.
func (r RedisCache) Invalidate(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, "materials:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis delete failed: %w", err)
		}
	}
	return iter.Err()
}

func cacheKey(category string) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("materials:%s", category)
}
