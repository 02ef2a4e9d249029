// Package redis provides Redis-backed adapters: the customer session store
// and the order status notifier.
package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

// keySession maps an opaque token to the owning customer's ID:
// session:{token} -> customer UUID string.
const keySession = "session:%s"

// tokenBytes is the entropy of a session token; tokens are hex encoded.
const tokenBytes = 32

// SessionStore implements SessionStore on Redis. Sessions expire through
// Redis key TTLs; no cleanup job is needed.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Create issues a new opaque token for the customer and stores it with the
// given TTL.
func (s *SessionStore) Create(ctx context.Context, customerID kernel.UUID, ttl time.Duration) (string, error) {
	if err := customerID.Validate(); err != nil {
		return "", err
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := hex.EncodeToString(raw)

	key := fmt.Sprintf(keySession, token)
	if err := s.client.Set(ctx, key, customerID.String(), ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Resolve returns the customer owning the token. Unknown and expired
// tokens both come back as ErrSessionNotFound.
func (s *SessionStore) Resolve(ctx context.Context, token string) (kernel.UUID, error) {
	if token == "" {
		return kernel.UUID{}, ports.ErrSessionNotFound
	}

	value, err := s.client.Get(ctx, fmt.Sprintf(keySession, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return kernel.UUID{}, ports.ErrSessionNotFound
		}
		return kernel.UUID{}, fmt.Errorf("resolve session: %w", err)
	}

	customerID, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("corrupt session value: %w", err)
	}

	return customerID, nil
}

// Revoke deletes the token. Revoking an unknown token is a no-op.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	return s.client.Del(ctx, fmt.Sprintf(keySession, token)).Err()
}
