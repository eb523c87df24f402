package ports

import (
	"context"
	"errors"
	"time"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// CredentialStore persists one bearer credential per client session under a
// fixed key. It is the only durable session state; everything else is derived
// from the credential on restore.
type CredentialStore interface {
	// Load returns the stored credential, or domain.ErrNoCredential.
	Load(ctx context.Context, sessionID string) (string, error)
	Save(ctx context.Context, sessionID, credential string) error
	Purge(ctx context.Context, sessionID string) error
}

// WishlistRepository persists wishlists keyed by owner (user email when
// authenticated, session id otherwise). Wishlists never reach the backend.
type WishlistRepository interface {
	List(ctx context.Context, owner string) ([]domain.WishlistItem, error)
	Save(ctx context.Context, owner string, items []domain.WishlistItem) error
}

// ErrCacheMiss is returned by CatalogCache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache is a TTL'd byte cache in front of catalog reads.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
