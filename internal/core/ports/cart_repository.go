package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for customer carts.
// A customer has at most one cart, keyed by their identifier.
type CartRepository interface {
	// Get retrieves the customer's cart. When the customer has no stored
	// cart yet an empty one is returned.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// Save replaces the customer's stored cart with the given aggregate.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
