package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
)

type stubCredentialStore struct {
	tokens map[string]string
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{tokens: make(map[string]string)}
}

func (s *stubCredentialStore) Load(_ context.Context, sessionID string) (string, error) {
	tok, ok := s.tokens[sessionID]
	if !ok {
		return "", domain.ErrNoCredential
	}
	return tok, nil
}

func (s *stubCredentialStore) Save(_ context.Context, sessionID, credential string) error {
	s.tokens[sessionID] = credential
	return nil
}

func (s *stubCredentialStore) Purge(_ context.Context, sessionID string) error {
	delete(s.tokens, sessionID)
	return nil
}

type stubAuthAPI struct {
	signinResult *ports.SigninResult
	signinErr    error
	signupErr    error
	signups      int
}

func (s *stubAuthAPI) Signin(_ context.Context, _, _ string) (*ports.SigninResult, error) {
	if s.signinErr != nil {
		return nil, s.signinErr
	}
	return s.signinResult, nil
}

func (s *stubAuthAPI) Signup(_ context.Context, _ ports.SignupInput) error {
	s.signups++
	return s.signupErr
}

func testToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestSession(creds ports.CredentialStore, auth ports.AuthAPI) *Session {
	return NewSession("sess-1", creds, auth, zerolog.Nop())
}

func TestSession_StartsLoading(t *testing.T) {
	sess := newTestSession(newStubCredentialStore(), &stubAuthAPI{})
	if sess.State() != domain.SessionLoading {
		t.Fatalf("expected Loading, got %s", sess.State())
	}
}

func TestSession_RestoreWithoutCredential(t *testing.T) {
	sess := newTestSession(newStubCredentialStore(), &stubAuthAPI{})
	sess.Restore(context.Background())

	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous, got %s", sess.State())
	}
	if sess.User() != nil {
		t.Fatalf("expected nil user")
	}
}

func TestSession_RestoreValidCredential(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["sess-1"] = testToken(t, jwt.MapClaims{
		"sub":   "shopper@example.com",
		"roles": []any{"ROLE_USER"},
		"id":    float64(5),
		"name":  "Shopper",
	})

	sess := newTestSession(creds, &stubAuthAPI{})
	sess.Restore(context.Background())

	if sess.State() != domain.SessionAuthenticated {
		t.Fatalf("expected Authenticated, got %s", sess.State())
	}
	u := sess.User()
	if u == nil || u.Email != "shopper@example.com" || u.Role != domain.RoleUser || u.ID != 5 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestSession_RestoreMalformedCredentialPurges(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["sess-1"] = "garbage"

	sess := newTestSession(creds, &stubAuthAPI{})
	sess.Restore(context.Background())

	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous, got %s", sess.State())
	}
	if _, ok := creds.tokens["sess-1"]; ok {
		t.Fatalf("expected malformed credential to be purged")
	}
}

func TestSession_LoginSuccess(t *testing.T) {
	creds := newStubCredentialStore()
	tok := testToken(t, jwt.MapClaims{"sub": "shopper@example.com", "roles": []any{"ROLE_USER"}})
	auth := &stubAuthAPI{signinResult: &ports.SigninResult{
		AccessToken: tok,
		ID:          5,
		Email:       "shopper@example.com",
		Name:        "Shopper",
	}}

	sess := newTestSession(creds, auth)
	sess.Restore(context.Background())

	user, err := sess.Login(context.Background(), "shopper@example.com", "pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Name != "Shopper" || user.ID != 5 || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sess.State() != domain.SessionAuthenticated {
		t.Fatalf("expected Authenticated, got %s", sess.State())
	}
	if creds.tokens["sess-1"] != tok {
		t.Fatalf("expected credential persisted")
	}
	if sess.Credential() != tok {
		t.Fatalf("expected credential exposed for backend calls")
	}
}

func TestSession_LoginUndecodableTokenIsBackendFault(t *testing.T) {
	creds := newStubCredentialStore()
	auth := &stubAuthAPI{signinResult: &ports.SigninResult{AccessToken: "not-a-jwt"}}

	sess := newTestSession(creds, auth)
	sess.Restore(context.Background())

	_, err := sess.Login(context.Background(), "shopper@example.com", "pass")
	if !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("expected ErrBackend, got %v", err)
	}
	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous after bad token, got %s", sess.State())
	}
	if len(creds.tokens) != 0 {
		t.Fatalf("undecodable token must not be persisted")
	}
}

func TestSession_LoginFailureKeepsPriorState(t *testing.T) {
	creds := newStubCredentialStore()
	auth := &stubAuthAPI{signinErr: domain.ErrInvalidCredentials}

	sess := newTestSession(creds, auth)
	sess.Restore(context.Background())

	_, err := sess.Login(context.Background(), "shopper@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous after failed login, got %s", sess.State())
	}
	if len(creds.tokens) != 0 {
		t.Fatalf("no credential should be committed on failure")
	}
}

func TestSession_RegisterSignsUpThenLogsIn(t *testing.T) {
	tok := testToken(t, jwt.MapClaims{"sub": "new@example.com"})
	auth := &stubAuthAPI{signinResult: &ports.SigninResult{AccessToken: tok, Email: "new@example.com"}}

	sess := newTestSession(newStubCredentialStore(), auth)
	sess.Restore(context.Background())

	user, err := sess.Register(context.Background(), "New Shopper", "new@example.com", "pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if auth.signups != 1 {
		t.Fatalf("expected one signup call, got %d", auth.signups)
	}
	if user.Email != "new@example.com" || sess.State() != domain.SessionAuthenticated {
		t.Fatalf("expected authenticated session after register")
	}
}

func TestSession_RegisterFailurePropagates(t *testing.T) {
	auth := &stubAuthAPI{signupErr: domain.ErrInvalidCredentials}
	sess := newTestSession(newStubCredentialStore(), auth)
	sess.Restore(context.Background())

	if _, err := sess.Register(context.Background(), "x", "x@example.com", "p"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous, got %s", sess.State())
	}
}

func TestSession_LogoutNotifiesSubscribersAfterTransition(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["sess-1"] = testToken(t, jwt.MapClaims{"sub": "shopper@example.com"})

	sess := newTestSession(creds, &stubAuthAPI{})
	sess.Restore(context.Background())

	calls := 0
	var stateAtNotify domain.SessionState
	sess.OnEnd(func() {
		calls++
		stateAtNotify = sess.State()
	})

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected subscriber to run exactly once, ran %d times", calls)
	}
	if stateAtNotify != domain.SessionAnonymous {
		t.Fatalf("subscriber ran before transition, state was %s", stateAtNotify)
	}
	if _, ok := creds.tokens["sess-1"]; ok {
		t.Fatalf("expected credential purged on logout")
	}
}

func TestSession_LogoutWithoutSubscribers(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["sess-1"] = testToken(t, jwt.MapClaims{"sub": "shopper@example.com"})

	sess := newTestSession(creds, &stubAuthAPI{})
	sess.Restore(context.Background())

	if err := sess.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous, got %s", sess.State())
	}
}

func TestSession_InvalidateEndsSession(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["sess-1"] = testToken(t, jwt.MapClaims{"sub": "shopper@example.com"})

	sess := newTestSession(creds, &stubAuthAPI{})
	sess.Restore(context.Background())

	cleared := false
	sess.OnEnd(func() { cleared = true })

	sess.Invalidate(context.Background())

	if sess.State() != domain.SessionAnonymous {
		t.Fatalf("expected Anonymous, got %s", sess.State())
	}
	if !cleared {
		t.Fatalf("expected session-ended subscribers to run")
	}
	if len(creds.tokens) != 0 {
		t.Fatalf("expected credential purged")
	}
}

func TestSessionManager_ResolvePairsSessionAndCart(t *testing.T) {
	m := NewSessionManager(newStubCredentialStore(), &stubAuthAPI{}, zerolog.Nop())

	entry := m.Resolve(context.Background(), "")
	if entry.Session.ID() == "" {
		t.Fatalf("expected generated session id")
	}
	if entry.Session.State() != domain.SessionAnonymous {
		t.Fatalf("expected restored session, got %s", entry.Session.State())
	}

	entry.Cart.Add(domain.CartProduct{ID: "1", Name: "Oak Chair", Price: 100})

	again := m.Resolve(context.Background(), entry.Session.ID())
	if again != entry {
		t.Fatalf("expected the same entry for the same id")
	}
	if again.Cart.ItemCount() != 1 {
		t.Fatalf("expected cart to persist across requests")
	}

	// logout clears the cart through the session-ended event
	if err := entry.Session.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if entry.Cart.ItemCount() != 0 {
		t.Fatalf("expected cart cleared on logout")
	}
}

func TestSessionManager_EvictIdleBoundsCookielessTraffic(t *testing.T) {
	m := NewSessionManager(newStubCredentialStore(), &stubAuthAPI{}, zerolog.Nop())
	base := time.Now()
	m.now = func() time.Time { return base }

	// a burst of requests that never return their cookie
	for i := 0; i < 100; i++ {
		m.Resolve(context.Background(), "")
	}
	if m.Len() != 100 {
		t.Fatalf("expected 100 live entries, got %d", m.Len())
	}

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	if evicted := m.EvictIdle(time.Hour); evicted != 100 {
		t.Fatalf("expected 100 evictions, got %d", evicted)
	}
	if m.Len() != 0 {
		t.Fatalf("expected empty registry after eviction, got %d entries", m.Len())
	}
}

func TestSessionManager_ResolveRefreshesLastSeen(t *testing.T) {
	m := NewSessionManager(newStubCredentialStore(), &stubAuthAPI{}, zerolog.Nop())
	base := time.Now()
	m.now = func() time.Time { return base }

	entry := m.Resolve(context.Background(), "")

	// touched again 50 minutes in, so at the 100-minute mark it is only
	// 50 minutes idle and must survive a 1-hour cutoff
	m.now = func() time.Time { return base.Add(50 * time.Minute) }
	m.Resolve(context.Background(), entry.Session.ID())

	m.now = func() time.Time { return base.Add(100 * time.Minute) }
	if evicted := m.EvictIdle(time.Hour); evicted != 0 {
		t.Fatalf("expected no evictions, got %d", evicted)
	}
	if again := m.Resolve(context.Background(), entry.Session.ID()); again != entry {
		t.Fatalf("expected the refreshed entry to survive")
	}
}

func TestSessionManager_EvictedSessionRestoresFromCredentialStore(t *testing.T) {
	creds := newStubCredentialStore()
	creds.tokens["returning"] = testToken(t, jwt.MapClaims{
		"sub":   "shopper@example.com",
		"roles": []any{"ROLE_USER"},
	})

	m := NewSessionManager(creds, &stubAuthAPI{}, zerolog.Nop())
	base := time.Now()
	m.now = func() time.Time { return base }

	entry := m.Resolve(context.Background(), "returning")
	if entry.Session.State() != domain.SessionAuthenticated {
		t.Fatalf("expected Authenticated, got %s", entry.Session.State())
	}
	entry.Cart.Add(domain.CartProduct{ID: "1", Name: "Oak Chair", Price: 100})

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	m.EvictIdle(time.Hour)

	// the shopper returns: identity is rebuilt from the stored credential,
	// the in-memory cart is gone
	revived := m.Resolve(context.Background(), "returning")
	if revived == entry {
		t.Fatalf("expected a fresh entry after eviction")
	}
	if revived.Session.State() != domain.SessionAuthenticated {
		t.Fatalf("expected restored authentication, got %s", revived.Session.State())
	}
	if revived.Cart.ItemCount() != 0 {
		t.Fatalf("expected an empty cart after eviction, got %d items", revived.Cart.ItemCount())
	}
}
