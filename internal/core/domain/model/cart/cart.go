// Package cart provides the Cart aggregate: a customer's pending selection
// of catalog items before checkout.
package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory functions.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart holds a customer's pending items. Each customer has at most one cart,
// identified by the customer. Adding a product already present in the same
// size merges into the existing line instead of creating a duplicate.
type Cart struct {
	customerID kernel.UUID
	items      []Item

	isConstructed bool
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{customerID: customerID, isConstructed: true}, nil
}

// RestoreCart reconstructs a cart and its lines from persistence.
func RestoreCart(customerID kernel.UUID, items []Item) (*Cart, error) {
	cart, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	cart.items = append(cart.items, items...)
	return cart, nil
}

// Validate ensures the cart was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the owner of the cart.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	return append([]Item(nil), c.items...)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Subtotal returns the sum of all line subtotals in whole currency units.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// AddItem adds a line to the cart. When a line for the same product and size
// already exists, the quantities are merged instead.
func (c *Cart) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i, existing := range c.items {
		if existing.productID == item.productID && existing.size == item.size {
			merged, err := existing.withQuantity(existing.quantity + item.quantity)
			if err != nil {
				return err
			}
			c.items[i] = merged
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// removes the line.
func (c *Cart) UpdateQuantity(itemID kernel.UUID, quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	if quantity == 0 {
		return c.RemoveItem(itemID)
	}

	for i, existing := range c.items {
		if existing.id == itemID {
			updated, err := existing.withQuantity(quantity)
			if err != nil {
				return err
			}
			c.items[i] = updated
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemID", itemID)
}

// RemoveItem deletes a line from the cart.
func (c *Cart) RemoveItem(itemID kernel.UUID) error {
	for i, existing := range c.items {
		if existing.id == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("itemID", itemID)
}

// Clear removes all lines. Checkout clears the cart after placing the order.
func (c *Cart) Clear() {
	c.items = nil
}
