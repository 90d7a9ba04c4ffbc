package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elitecart/storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var ErrProductNotFound = errors.New("product not found")

// Service serves the product catalog through a cache. Cache errors are
// logged and fall through to the source data; lookups for the same key
// are collapsed with singleflight so a cold cache is filled once.
type Service struct {
	cache  ProductCache
	logger *zap.Logger
	sfg    singleflight.Group

	products []domain.Product
}

func NewService(cache ProductCache, logger *zap.Logger) *Service {
	return &Service{
		cache:    cache,
		logger:   logger,
		products: sampleProducts,
	}
}

// Products returns the full catalog, in display order.
func (s *Service) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	products, err := s.lookup(ctx, key, func() []domain.Product {
		for _, p := range s.products {
			if p.ID == id {
				return []domain.Product{p}
			}
		}
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	if len(products) == 0 {
		return domain.Product{}, ErrProductNotFound
	}
	return products[0], nil
}

// Search matches the query against product name, category, brand and
// description, case-insensitively. An empty query returns the whole
// catalog.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Products(), nil
	}

	return s.lookup(ctx, "search:"+query, func() []domain.Product {
		var matches []domain.Product
		for _, p := range s.products {
			haystack := strings.ToLower(p.Name + " " + p.Category + " " + p.Brand + " " + p.Description)
			if strings.Contains(haystack, query) {
				matches = append(matches, p)
			}
		}
		return matches
	})
}

// lookup consults the cache first, computing and caching the result on
// a miss. Singleflight prevents concurrent misses for the same key from
// all recomputing.
func (s *Service) lookup(ctx context.Context, key string, compute func() []domain.Product) ([]domain.Product, error) {
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("cache get error", zap.String("key", key), zap.Error(err))
		}

		products := compute()

		go func() {
			if err := s.cache.Set(context.Background(), key, products); err != nil {
				s.logger.Warn("cache set error", zap.String("key", key), zap.Error(err))
			}
		}()

		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}
