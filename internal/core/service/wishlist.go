package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// Wishlist manages the durable per-owner product list. It is independent of
// the cart and never synced to the commerce backend; the owner key is the
// user email when authenticated, the session id otherwise.
type Wishlist struct {
	repo ports.WishlistRepository
	log  zerolog.Logger
}

func NewWishlist(repo ports.WishlistRepository, log zerolog.Logger) *Wishlist {
	return &Wishlist{repo: repo, log: log}
}

// List returns the owner's wishlist, empty when none exists.
func (s *Wishlist) List(ctx context.Context, owner string) ([]domain.WishlistItem, error) {
	items, err := s.repo.List(ctx, owner)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return items, nil
}

// Toggle adds the item when absent and removes it when present, reporting
// whether the item ended up on the list.
func (s *Wishlist) Toggle(ctx context.Context, owner string, item domain.WishlistItem) (bool, error) {
	items, err := s.repo.List(ctx, owner)
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ProductID == item.ProductID {
			items = append(items[:i], items[i+1:]...)
			return false, s.repo.Save(ctx, owner, items)
		}
	}

	items = append(items, item)
	return true, s.repo.Save(ctx, owner, items)
}

// Remove deletes the product from the wishlist; absent products are a no-op.
func (s *Wishlist) Remove(ctx context.Context, owner string, productID int) error {
	items, err := s.repo.List(ctx, owner)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ProductID == productID {
			return s.repo.Save(ctx, owner, append(items[:i], items[i+1:]...))
		}
	}
	return nil
}
