package ports

import (
	"context"

	"storefront/internal/core/domain/model/messaging"
)

// MessagingRepository defines the persistence contract for contact form
// messages and newsletter subscriptions.
type MessagingRepository interface {
	// AddContactMessage persists a contact form submission.
	AddContactMessage(ctx context.Context, aggregate *messaging.ContactMessage) error

	// AddSubscription persists a newsletter signup. Subscribing an
	// already subscribed email is a no-op, not an error.
	AddSubscription(ctx context.Context, aggregate *messaging.Subscription) error
}
