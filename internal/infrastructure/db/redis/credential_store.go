package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aravindhandhana31-ship-it/furniture-frontend/internal/core/domain"
)

const credentialTTL = 7 * 24 * time.Hour

// CredentialStore persists one bearer credential per client session.
// Key format: credential:<session_id>
type CredentialStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCredentialStore creates a CredentialStore wrapping the given client.
// If ttl <= 0 a week-long default is used; the backend's own token expiry is
// still authoritative, this only bounds how long a stale key lingers.
func NewCredentialStore(client *redis.Client, ttl time.Duration) *CredentialStore {
	if ttl <= 0 {
		ttl = credentialTTL
	}
	return &CredentialStore{client: client, ttl: ttl}
}

// Load returns the stored credential, or domain.ErrNoCredential.
func (s *CredentialStore) Load(ctx context.Context, sessionID string) (string, error) {
	cred, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNoCredential
		}
		return "", fmt.Errorf("credential load: %w", err)
	}
	return cred, nil
}

// Save stores the credential under the session's fixed key.
func (s *CredentialStore) Save(ctx context.Context, sessionID, credential string) error {
	if err := s.client.Set(ctx, s.key(sessionID), credential, s.ttl).Err(); err != nil {
		return fmt.Errorf("credential save: %w", err)
	}
	return nil
}

// Purge removes the credential. Purging an absent key is not an error.
func (s *CredentialStore) Purge(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("credential purge: %w", err)
	}
	return nil
}

func (s *CredentialStore) key(sessionID string) string {
	return "credential:" + sessionID
}
