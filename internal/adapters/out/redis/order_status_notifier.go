package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/core/domain/model/order"
)

// keyOrderStatusChannel is the pub/sub channel for one order's status
// changes: order:status:{order_id}.
const keyOrderStatusChannel = "order:status:%s"

// statusChangedEvent is the wire payload published on a status change.
type statusChangedEvent struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderStatusNotifier implements OrderStatusNotifier on Redis pub/sub.
// Publishing to a channel with no subscribers is fine; nobody was
// listening and nobody is owed the message.
type OrderStatusNotifier struct {
	client *redis.Client
}

// NewOrderStatusNotifier creates a Redis-backed order status notifier.
func NewOrderStatusNotifier(client *redis.Client) *OrderStatusNotifier {
	return &OrderStatusNotifier{client: client}
}

// PublishStatusChanged announces the order's current status on the order's
// own channel.
func (n *OrderStatusNotifier) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(statusChangedEvent{
		OrderID:   aggregate.ID().String(),
		Status:    aggregate.Status().String(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}

	channel := fmt.Sprintf(keyOrderStatusChannel, aggregate.ID().String())
	return n.client.Publish(ctx, channel, payload).Err()
}
