// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// MessagingRepoFactory provides access to the messaging repository within a transaction.
	MessagingRepoFactory interface {
		MessagingRepository() ports.MessagingRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// cancellation requests, return requests, fulfillment progression.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for checkout: the new order and the
	// cleared cart must commit together.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// ReviewUoW manages transactions for review operations. The product
	// repository is needed to confirm the reviewed product exists.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		ProductRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// CartUoW manages transactions for cart operations. The product
	// repository supplies the snapshot data for new cart lines.
	CartUoW interface {
		TxManager
		CartRepoFactory
		ProductRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CustomerUoW manages transactions for account operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// MessagingUoW manages transactions for contact form and newsletter
	// operations.
	MessagingUoW interface {
		TxManager
		MessagingRepoFactory
	}

	// MessagingUoWFactory creates new messaging unit of work instances.
	MessagingUoWFactory interface {
		Create() MessagingUoW
	}
)
