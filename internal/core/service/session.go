package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/ports"
	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/token"
)

// Session is the identity state of one client session. It moves between
// Loading, Anonymous, and Authenticated; the only durable piece is the bearer
// credential in the CredentialStore, from which the User is re-derived on
// every restore.
//
// Login and Register are request/response calls against the external auth
// collaborator. Overlapping logins are not deduplicated: the last response to
// resolve wins.
type Session struct {
	id    string
	creds ports.CredentialStore
	auth  ports.AuthAPI
	log   zerolog.Logger

	mu         sync.Mutex
	state      domain.SessionState
	user       *domain.User
	credential string
	onEnd      []func()
}

var (
	_ ports.SessionService     = (*Session)(nil)
	_ ports.RequestCredentials = (*Session)(nil)
)

// NewSession returns a session in the Loading state. Call Restore before
// using it for gate decisions.
func NewSession(id string, creds ports.CredentialStore, auth ports.AuthAPI, log zerolog.Logger) *Session {
	return &Session{
		id:    id,
		creds: creds,
		auth:  auth,
		log:   log.With().Str("session_id", id).Logger(),
		state: domain.SessionLoading,
	}
}

func (s *Session) ID() string { return s.id }

// State reports the current lifecycle state.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the authenticated identity, or nil.
func (s *Session) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Credential returns the bearer credential attached to outgoing backend
// calls, or "" when anonymous.
func (s *Session) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// OnEnd subscribes fn to the session-ended event. Subscribers run after the
// transition to Anonymous, once per logout. The cart store subscribes here so
// the session never has to know the cart exists.
func (s *Session) OnEnd(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnd = append(s.onEnd, fn)
}

// Restore loads the persisted credential and resolves the Loading state:
// absent → Anonymous; present and decodable → Authenticated; present but
// malformed → purge and Anonymous, with no user-visible error.
func (s *Session) Restore(ctx context.Context) {
	cred, err := s.creds.Load(ctx, s.id)
	if err != nil {
		if !errors.Is(err, domain.ErrNoCredential) {
			s.log.Warn().Err(err).Msg("credential restore failed, treating as anonymous")
		}
		s.setAnonymous()
		return
	}

	claims, err := token.Decode(cred)
	if err != nil {
		s.log.Debug().Msg("stored credential malformed, purging")
		if purgeErr := s.creds.Purge(ctx, s.id); purgeErr != nil {
			s.log.Warn().Err(purgeErr).Msg("credential purge failed")
		}
		s.setAnonymous()
		return
	}

	user := claims.User()
	s.mu.Lock()
	s.state = domain.SessionAuthenticated
	s.user = &user
	s.credential = cred
	s.mu.Unlock()
}

// Login authenticates against the backend. On success the credential is
// persisted and decoded and the session becomes Authenticated. On failure the
// prior state is kept and the error propagates to the caller.
func (s *Session) Login(ctx context.Context, email, password string) (domain.User, error) {
	res, err := s.auth.Signin(ctx, email, password)
	if err != nil {
		return domain.User{}, err
	}

	claims, err := token.Decode(res.AccessToken)
	if err != nil {
		// The signin itself succeeded, so an undecodable token is the
		// backend handing us nonsense, not a credential problem.
		return domain.User{}, fmt.Errorf("%w: signin returned undecodable token: %v", domain.ErrBackend, err)
	}

	// The backend's response fields take precedence over the token claims
	// when present; the role always comes from the token.
	user := claims.User()
	if res.ID != 0 {
		user.ID = res.ID
	}
	if res.Email != "" {
		user.Email = res.Email
	}
	if res.Name != "" {
		user.Name = res.Name
	}

	if err := s.creds.Save(ctx, s.id, res.AccessToken); err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	s.state = domain.SessionAuthenticated
	s.user = &user
	s.credential = res.AccessToken
	s.mu.Unlock()

	s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("signed in")
	return user, nil
}

// Register signs up with the backend and, on success, logs in with the same
// credentials. A signup failure propagates without any state transition.
func (s *Session) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	err := s.auth.Signup(ctx, ports.SignupInput{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		return domain.User{}, err
	}
	return s.Login(ctx, email, password)
}

// Logout purges the credential, transitions to Anonymous, and then notifies
// end-of-session subscribers. The transition happens even if the purge fails;
// the purge error is still reported.
func (s *Session) Logout(ctx context.Context) error {
	purgeErr := s.creds.Purge(ctx, s.id)

	subscribers := s.setAnonymous()
	for _, fn := range subscribers {
		fn()
	}

	s.log.Info().Msg("signed out")
	return purgeErr
}

// Invalidate is the authorization-failure path: the backend rejected the
// credential on some call, so the credential is purged and the session ends,
// independent of which call triggered it.
func (s *Session) Invalidate(ctx context.Context) {
	if err := s.creds.Purge(ctx, s.id); err != nil {
		s.log.Warn().Err(err).Msg("credential purge failed")
	}
	subscribers := s.setAnonymous()
	for _, fn := range subscribers {
		fn()
	}
	s.log.Info().Msg("credential rejected by backend, session ended")
}

// setAnonymous clears the identity and returns the subscribers to notify.
// Notification happens outside the lock, after the transition is visible.
func (s *Session) setAnonymous() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.SessionAnonymous
	s.user = nil
	s.credential = ""
	subscribers := make([]func(), len(s.onEnd))
	copy(subscribers, s.onEnd)
	return subscribers
}
