package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

const maxItemQuantity = 99

// Item is a single cart line: a product snapshot together with the chosen
// size and quantity.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	name      string
	price     int64
	image     string
	size      string
	quantity  int

	isConstructed bool
}

// NewItem creates a cart line. Price is in whole currency units; quantity must be
// between 1 and 99.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	name string,
	price int64,
	image string,
	size string,
	quantity int,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	if quantity < 1 || quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	return Item{
		id:            id,
		productID:     productID,
		name:          name,
		price:         price,
		image:         image,
		size:          size,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the cart line identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the product in this line.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name snapshot.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price snapshot in whole currency units.
func (i Item) Price() int64 {
	return i.price
}

// Image returns the product image snapshot.
func (i Item) Image() string {
	return i.image
}

// Size returns the chosen size variant, if any.
func (i Item) Size() string {
	return i.size
}

// Quantity returns the number of units in this line.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() int64 {
	return i.price * int64(i.quantity)
}

func (i Item) withQuantity(quantity int) (Item, error) {
	return NewItem(i.id, i.productID, i.name, i.price, i.image, i.size, quantity)
}
