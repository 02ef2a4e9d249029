package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateCartItemCommandIsNotConstructed = errors.New(
		"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// UpdateCartItemCommand represents a request to change a cart line's
// quantity. A quantity of zero removes the line.
type UpdateCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemCommand creates a command to set a cart line's quantity.
func NewUpdateCartItemCommand(customerID kernel.UUID, itemID kernel.UUID, quantity int) (UpdateCartItemCommand, error) {
	updateCommand := UpdateCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCustomerID(customerID),
		updateCommand.setItemID(itemID),
		updateCommand.setQuantity(quantity),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c UpdateCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the cart line to change.
func (c UpdateCartItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c UpdateCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCartItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateCartItemCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
