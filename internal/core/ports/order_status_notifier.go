package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderStatusNotifier publishes order status changes so interested parties
// (status pages, notification workers) can react without polling.
type OrderStatusNotifier interface {
	// PublishStatusChanged announces the order's new status on the
	// order's own channel. Delivery is best effort: a missing subscriber
	// is not an error.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
