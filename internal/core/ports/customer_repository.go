package ports

import (
	"context"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	// Add persists a new customer account.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer, including their
	// address book.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by their login email.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
