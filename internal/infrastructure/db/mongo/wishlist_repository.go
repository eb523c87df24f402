package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

const wishlistCollection = "wishlists"

// WishlistRepository persists wishlists as one document per owner. The owner
// is the user email for authenticated shoppers and the session id otherwise,
// so a wishlist started before sign-in stays behind after it — matching the
// storage key split the storefront has always had.
type WishlistRepository struct {
	coll *mongo.Collection
}

func NewWishlistRepository(db *mongo.Database) *WishlistRepository {
	return &WishlistRepository{coll: db.Collection(wishlistCollection)}
}

type wishlistDoc struct {
	Owner     string                `bson:"_id"`
	Items     []domain.WishlistItem `bson:"items"`
	UpdatedAt int64                 `bson:"updated_at"`
}

// List returns the owner's wishlist; a missing document is an empty list.
func (r *WishlistRepository) List(ctx context.Context, owner string) ([]domain.WishlistItem, error) {
	var doc wishlistDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": owner}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find wishlist: %w", err)
	}
	return doc.Items, nil
}

// Save replaces the owner's wishlist wholesale, creating it when absent.
func (r *WishlistRepository) Save(ctx context.Context, owner string, items []domain.WishlistItem) error {
	doc := wishlistDoc{
		Owner:     owner,
		Items:     items,
		UpdatedAt: time.Now().UTC().Unix(),
	}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": owner}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}
	return nil
}
