package domain

// Category is a catalog grouping as returned by the commerce backend.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Product is a catalog item as returned by the commerce backend. Image holds
// the raw file name from the backend; the catalog service rewrites it into an
// absolute URL using the configured image base.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	CategoryID  int     `json:"category_id,omitempty"`
	Category    string  `json:"category,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// CategoryProductCount pairs a category with the number of products in it.
type CategoryProductCount struct {
	CategoryID   int    `json:"category_id"`
	CategoryName string `json:"category_name"`
	Count        int    `json:"count"`
}

// WishlistItem is a product record kept on a wishlist. The wishlist is
// durable and entirely separate from the cart; it is never synced to the
// commerce backend.
type WishlistItem struct {
	ProductID int     `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image" bson:"image"`
}
