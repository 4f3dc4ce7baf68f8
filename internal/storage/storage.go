package storage

import (
	"context"
	"errors"
)

// Store is the durable, string-keyed store shared by the cart, the wishlist and
// the session. Values are serialised as JSON snapshots.
type Store interface {
	// Get decodes the value stored under key into value. A missing key
	// reports found=false with a nil error.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Keys owned by each collaborator. No two owners share a key.
const (
	CartItemsKey     = "cartItems"
	WishlistItemsKey = "wishlistItems"
	UserKey          = "user"
	AccessTokenKey   = "accessToken"
)

var ErrClosed = errors.New("storage: store is closed")

func Key(prefix string, id string) string {
	return prefix + ":" + id
}
