package domain

// CartProduct identifies a product as it is added to the cart: everything a
// cart line carries except the quantity.
type CartProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// CartLine is a single cart entry. At most one line exists per product id;
// adding the same product again increments Quantity instead of duplicating.
type CartLine struct {
	CartProduct
	Quantity int `json:"quantity"`
}

// Subtotal returns price × quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartView is a read snapshot of the cart with its derived attributes.
// ItemCount and Total are recomputed on every read, never cached.
type CartView struct {
	Items     []CartLine `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}
