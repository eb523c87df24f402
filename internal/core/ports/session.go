package ports

import (
	"context"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

// SessionService is the identity state of one running client session.
type SessionService interface {
	State() domain.SessionState
	User() *domain.User

	// Login authenticates against the commerce backend, persists the
	// returned credential, and transitions to Authenticated. On failure the
	// prior state is kept and the error propagates.
	Login(ctx context.Context, email, password string) (domain.User, error)

	// Register signs up and then logs in with the same credentials.
	Register(ctx context.Context, name, email, password string) (domain.User, error)

	// Logout purges the persisted credential, transitions to Anonymous, and
	// then notifies end-of-session subscribers exactly once.
	Logout(ctx context.Context) error

	// OnEnd subscribes to the session-ended event. The cart store uses this
	// to clear itself without the session depending on the cart directly.
	OnEnd(fn func())
}

// RequestCredentials exposes the current credential to outgoing backend
// calls, and lets the transport invalidate it when the backend answers 401.
type RequestCredentials interface {
	Credential() string
	Invalidate(ctx context.Context)
}

// CartService holds the pre-checkout selection for one client session.
type CartService interface {
	Add(p domain.CartProduct)
	UpdateQuantity(productID string, quantity int)
	Remove(productID string)
	Clear()
	View() domain.CartView
	ItemCount() int
	Total() float64
}
