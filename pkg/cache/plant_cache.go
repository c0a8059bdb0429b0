package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PlantCacheTTL is the time-to-live for cached plants. Plants are
	// immutable once stored, so the TTL only bounds memory use.
	PlantCacheTTL = 24 * time.Hour

	plantCacheKeyPrefix = "plant"
)

// CachedPlant is the read model stored in Redis as a hash.
type CachedPlant struct {
	ID          string
	Name        string
	Categories  []string
	Price       float64
	Description string
	Image       string
	InStock     bool
	CreatedAt   time.Time
}

// PlantCache provides read/write operations for plant cache entries.
// Key format: "plant:{plantID}"
type PlantCache struct {
	client *RedisClient
}

// NewPlantCache creates a new PlantCache backed by the given RedisClient.
func NewPlantCache(r *RedisClient) *PlantCache {
	return &PlantCache{client: r}
}

// Get retrieves a cached plant by ID.
// Returns redis.Nil when the key does not exist or has expired.
func (c *PlantCache) Get(ctx context.Context, id string) (*CachedPlant, error) {
	vals, err := c.client.Client().HGetAll(ctx, plantKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return fromHash(vals)
}

// Set writes p as a Redis hash with PlantCacheTTL in a single pipeline.
func (c *PlantCache) Set(ctx context.Context, p *CachedPlant) error {
	fields, err := toHash(p)
	if err != nil {
		return err
	}
	key := plantKey(p.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, PlantCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func plantKey(id string) string {
	return plantCacheKeyPrefix + ":" + id
}

func toHash(p *CachedPlant) (map[string]any, error) {
	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	cats, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("cache encode categories: %w", err)
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"categories":  string(cats),
		"price":       strconv.FormatFloat(p.Price, 'f', -1, 64),
		"description": p.Description,
		"image":       p.Image,
		"in_stock":    strconv.FormatBool(p.InStock),
		"created_at":  p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromHash(vals map[string]string) (*CachedPlant, error) {
	var categories []string
	if err := json.Unmarshal([]byte(vals["categories"]), &categories); err != nil {
		return nil, fmt.Errorf("cache parse categories: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	inStock, err := strconv.ParseBool(vals["in_stock"])
	if err != nil {
		return nil, fmt.Errorf("cache parse in_stock: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	return &CachedPlant{
		ID:          vals["id"],
		Name:        vals["name"],
		Categories:  categories,
		Price:       price,
		Description: vals["description"],
		Image:       vals["image"],
		InStock:     inStock,
		CreatedAt:   createdAt,
	}, nil
}
