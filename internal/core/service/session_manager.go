package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

// SessionEntry pairs a session with its cart. The two are created together
// and the cart clears itself when the session ends, wired through the
// session-ended event rather than a direct dependency.
type SessionEntry struct {
	Session *Session
	Cart    *Cart

	lastSeen time.Time
}

// SessionManager owns the live sessions of the gateway, keyed by the opaque
// id issued in the browser cookie. Session objects and carts live in memory
// and are evicted after sitting idle; only the credential survives eviction
// or a restart, so a returning shopper comes back authenticated with an
// empty cart.
type SessionManager struct {
	creds ports.CredentialStore
	auth  ports.AuthAPI
	log   zerolog.Logger
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]*SessionEntry
}

func NewSessionManager(creds ports.CredentialStore, auth ports.AuthAPI, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		creds:   creds,
		auth:    auth,
		log:     log,
		now:     time.Now,
		entries: make(map[string]*SessionEntry),
	}
}

// Resolve returns the live entry for id, materialising one when the id is
// unknown or empty. A fresh entry restores its credential before returning,
// so callers never observe the Loading state mid-request. Every resolution
// marks the entry as seen, which is what keeps it clear of eviction.
func (m *SessionManager) Resolve(ctx context.Context, id string) *SessionEntry {
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.entries[id]; ok {
		entry.lastSeen = m.now()
		return entry
	}

	sess := NewSession(id, m.creds, m.auth, m.log)
	cart := NewCart()
	sess.OnEnd(cart.Clear)

	entry := &SessionEntry{Session: sess, Cart: cart, lastSeen: m.now()}
	m.entries[id] = entry

	// Restore inside the critical section so two racing requests with the
	// same new cookie see one consistent session.
	sess.Restore(ctx)

	return entry
}

// EvictIdle drops every entry not seen for at least maxIdle and reports how
// many went. Crawlers and cookie-less clients mint an entry per request;
// without this the registry would grow for the life of the process. Evicting
// an authenticated session loses nothing durable — the credential stays in
// the store and the next request restores it.
func (m *SessionManager) EvictIdle(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, entry := range m.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(m.entries, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.log.Debug().Int("evicted", evicted).Int("remaining", len(m.entries)).Msg("idle sessions evicted")
	}
	return evicted
}

// Sweep calls EvictIdle every interval until ctx is cancelled. Run it in its
// own goroutine next to the server.
func (m *SessionManager) Sweep(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.EvictIdle(maxIdle)
		}
	}
}

// Len reports the number of live entries.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
