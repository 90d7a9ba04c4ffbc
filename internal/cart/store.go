package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/elitecart/storefront/internal/domain"
	"github.com/elitecart/storefront/internal/storage"
	"go.uber.org/zap"
)

// Store holds the cart and the wishlist in memory and mirrors every
// change to durable storage. Persistence failures are logged and the
// in-memory mutation is kept; memory and durable state may diverge
// until the next successful write.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	logger   *zap.Logger
	items    []domain.CartItem
	wishlist []int64
	loaded   bool
}

func NewStore(kv storage.KV, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
	}
}

// Hydrate loads both collections from durable storage. Corrupt or
// unreadable data falls back to empty collections; Hydrate never fails.
// Callers should not render cart state before Hydrate returns.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = loadCollection[domain.CartItem](ctx, s.kv, storage.KeyCart, s.logger)
	s.wishlist = loadCollection[int64](ctx, s.kv, storage.KeyWishlist, s.logger)
	s.loaded = true
}

func loadCollection[T any](ctx context.Context, kv storage.KV, key string, logger *zap.Logger) []T {
	data, err := kv.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("failed to load collection", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("discarding corrupt collection", zap.String("key", key), zap.Error(err))
		return nil
	}
	return out
}

// Loaded reports whether the initial load attempt has completed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// AddToCart inserts the product with quantity 1, or increments the
// existing entry's quantity. There is no stock ceiling.
func (s *Store) AddToCart(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity++
			s.saveCart(ctx)
			return
		}
	}

	s.items = append(s.items, product.CartItem())
	s.saveCart(ctx)
}

// RemoveFromCart deletes the entry with the given product id. Removing
// an absent id is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID int64) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.saveCart(ctx)
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity verbatim. A quantity of zero
// or less removes the entry.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.saveCart(ctx)
			return
		}
	}
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.saveCart(ctx)
}

// Items returns a copy of the cart, in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ToggleWishlist flips the product's wishlist membership and reports
// whether the product is wishlisted after the call.
func (s *Store) ToggleWishlist(ctx context.Context, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.saveWishlist(ctx)
			return false
		}
	}

	s.wishlist = append(s.wishlist, productID)
	s.saveWishlist(ctx)
	return true
}

func (s *Store) ClearWishlist(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist = nil
	s.saveWishlist(ctx)
}

// Wishlist returns a copy of the wishlisted product ids, in insertion order.
func (s *Store) Wishlist() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// Wishlisted reports membership for a single product id.
func (s *Store) Wishlisted(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// saveCart writes the whole cart through to durable storage. Must be
// called with the lock held.
func (s *Store) saveCart(ctx context.Context) {
	s.saveCollection(ctx, storage.KeyCart, s.items)
}

func (s *Store) saveWishlist(ctx context.Context) {
	s.saveCollection(ctx, storage.KeyWishlist, s.wishlist)
}

func (s *Store) saveCollection(ctx context.Context, key string, collection any) {
	data, err := json.Marshal(collection)
	if err != nil {
		s.logger.Warn("failed to marshal collection", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Save(ctx, key, data); err != nil {
		s.logger.Warn("failed to persist collection", zap.String("key", key), zap.Error(err))
	}
}
