package service

import (
	"sync"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// Cart is the in-memory selection for one client session. Lines keep their
// insertion order; a product appears at most once and repeated adds merge
// into its quantity. The cart is deliberately not persisted — a gateway
// restart resets it to empty, while the session itself survives through the
// stored credential.
type Cart struct {
	mu    sync.Mutex
	lines []domain.CartLine
}

var _ ports.CartService = (*Cart)(nil)

func NewCart() *Cart {
	return &Cart{}
}

// Add appends a new line with quantity 1, or increments the existing line for
// the same product id. Existing line order is never disturbed.
func (c *Cart) Add(p domain.CartProduct) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{CartProduct: p, Quantity: 1})
}

// UpdateQuantity sets the line's quantity. Zero or negative removes the line
// entirely; there is no upper bound.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line if present. Removing an absent product is a no-op,
// not an error.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Triggered by checkout success and by logout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// View returns a snapshot with the derived attributes recomputed.
func (c *Cart) View() domain.CartView {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]domain.CartLine, len(c.lines))
	copy(items, c.lines)

	view := domain.CartView{Items: items}
	for _, l := range items {
		view.ItemCount += l.Quantity
		view.Total += l.Subtotal()
	}
	return view
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	return c.View().ItemCount
}

// Total is the sum of price × quantity over all lines.
func (c *Cart) Total() float64 {
	return c.View().Total
}
