package storage

import (
	"context"
	"errors"
)

// KV is the durable key-value port every store persists through.
// Consumers define this interface, not the backend implementations.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("key not found")

// Storage keys. These form the durable layout and must stay stable
// across releases so existing data keeps hydrating.
const (
	KeyCart           = "elitecart-cart"
	KeyWishlist       = "elitecart-wishlist"
	KeyUser           = "elitecart-user"
	KeyPaymentHistory = "elitecart-payment-history"
)
