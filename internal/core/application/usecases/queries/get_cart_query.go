package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves the customer's cart contents with the subtotal
// precomputed.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a cart listing query for the given customer.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartResponse is the customer's cart shaped for rendering.
type CartResponse struct {
	Items    []CartItemResponse
	Subtotal int64
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Name      string
	Price     int64
	Image     string
	Size      string
	Quantity  int
}
