package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CategoryCacheTTL bounds staleness if an invalidation is ever missed.
	CategoryCacheTTL = 5 * time.Minute

	categoryCacheKey = "plant:categories"
)

// CategoryCache stores the distinct category list as a single JSON value.
type CategoryCache struct {
	client *RedisClient
}

// NewCategoryCache creates a new CategoryCache backed by the given RedisClient.
func NewCategoryCache(r *RedisClient) *CategoryCache {
	return &CategoryCache{client: r}
}

// Get returns the cached categories, or redis.Nil on a miss.
func (c *CategoryCache) Get(ctx context.Context) ([]string, error) {
	raw, err := c.client.Client().Get(ctx, categoryCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get categories: %w", err)
	}
	var categories []string
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("cache parse categories: %w", err)
	}
	return categories, nil
}

// Set stores categories with CategoryCacheTTL.
func (c *CategoryCache) Set(ctx context.Context, categories []string) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("cache encode categories: %w", err)
	}
	if err := c.client.Client().Set(ctx, categoryCacheKey, raw, CategoryCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set categories: %w", err)
	}
	return nil
}

// Invalidate drops the cached list; the next Get misses.
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, categoryCacheKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate categories: %w", err)
	}
	return nil
}
