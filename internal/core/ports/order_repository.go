package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrConcurrentOrderUpdate is returned by OrderRepository.Update when the
// order's stored status no longer matches the status the caller read.
// Another request changed the order between the read and the write; the
// caller must not overwrite that change.
var ErrConcurrentOrderUpdate = errors.New("order was modified concurrently")

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and ownership.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a
	// conditional write: the row is only updated when its stored status
	// still equals expectedStatus. Returns ErrConcurrentOrderUpdate when
	// the condition fails.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForCustomer retrieves every order placed by the given
	// customer, most recent first.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllInFulfillment retrieves all orders still moving through the
	// fulfillment pipeline (Processing, Shipped, Out for Delivery).
	// Used by the fulfillment progression job.
	GetAllInFulfillment(ctx context.Context) ([]*order.Order, error)
}
