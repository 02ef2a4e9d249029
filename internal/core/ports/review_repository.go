package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ReviewRepository defines the persistence contract for product reviews.
type ReviewRepository interface {
	// Add persists a new review.
	Add(ctx context.Context, aggregate *product.Review) error

	// Get retrieves a review by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Review, error)

	// Delete removes a review. Authorization is the command handler's
	// responsibility; the repository only deletes.
	Delete(ctx context.Context, id kernel.UUID) error
}
