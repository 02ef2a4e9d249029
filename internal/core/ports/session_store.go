package ports

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// ErrSessionNotFound is returned by SessionStore.Resolve for unknown or
// expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore issues and resolves opaque session tokens for logged-in
// customers. Tokens expire after the configured TTL.
type SessionStore interface {
	// Create issues a new session token for the customer.
	Create(ctx context.Context, customerID kernel.UUID, ttl time.Duration) (string, error)

	// Resolve returns the customer owning the token, or ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (kernel.UUID, error)

	// Revoke invalidates the token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}
