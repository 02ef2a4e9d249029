package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a snapshot of a purchased product line at the moment of checkout.
// Name, price and image are copied from the catalog so later catalog edits
// do not rewrite order history.
type Item struct {
	productID kernel.UUID
	name      string
	price     int64
	image     string
	quantity  int
	size      string

	guard guard.ConstructorGuard
}

// NewItem creates an order line. Price is in whole currency units.
func NewItem(productID kernel.UUID, name string, price int64, image string, quantity int, size string) (Item, error) {
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
	if size == "" {
		return Item{}, errs.NewValueIsRequiredError("size")
	}

	return Item{
		productID: productID,
		name:      name,
		price:     price,
		image:     image,
		quantity:  quantity,
		size:      size,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// maxItemQuantity caps a single order line.
const maxItemQuantity = 99

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the catalog identifier of the purchased product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at checkout.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at checkout, in whole currency units.
func (i Item) Price() int64 {
	return i.price
}

// Image returns the product image URL captured at checkout.
func (i Item) Image() string {
	return i.image
}

// Quantity returns how many units were purchased.
func (i Item) Quantity() int {
	return i.quantity
}

// Size returns the purchased size variant.
func (i Item) Size() string {
	return i.size
}

// Subtotal returns price multiplied by quantity, in whole currency units.
func (i Item) Subtotal() int64 {
	return i.price * int64(i.quantity)
}
