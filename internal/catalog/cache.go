package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/redis/go-redis/v9"
)

type ProductCache interface {
	Get(ctx context.Context, key string) ([]domain.Product, error)
	Set(ctx context.Context, key string, products []domain.Product) error
}

var ErrCacheMiss = errors.New("cache miss")

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

func (r *RedisCache) Get(ctx context.Context, key string) ([]domain.Product, error) {
	data, err := r.client.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("unmarshal products failed: %w", err)
	}
	return products, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal products failed: %w", err)
	}

	// Jitter spreads out expiry so hot keys don't stampede together.
	ttl := r.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := r.client.Set(ctx, cacheKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("catalog:%s", key)
}

// MemoryCache is the fallback ProductCache when no redis is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]domain.Product
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]domain.Product)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	return products, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = products
	return nil
}
