package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to put a product into the
// customer's cart. The product snapshot (name, price, image) is taken from
// the catalog when the command is handled.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	size       string
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a product to the cart in
// the given size and quantity.
func NewAddCartItemCommand(
	customerID kernel.UUID,
	productID kernel.UUID,
	size string,
	quantity int,
) (AddCartItemCommand, error) {
	addCommand := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setProductID(productID),
		addCommand.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	addCommand.size = size

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (c AddCartItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product to add.
func (c AddCartItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Size returns the chosen size variant, if any.
func (c AddCartItemCommand) Size() string {
	return c.size
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddCartItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
