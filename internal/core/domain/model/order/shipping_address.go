package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrShippingAddressIsNotConstructed is returned when a ShippingAddress was
// not created through the NewShippingAddress factory function.
var ErrShippingAddressIsNotConstructed = errors.New(
	"ShippingAddress must be created via NewShippingAddress constructor",
)

// ShippingAddress is a snapshot of the destination chosen at checkout.
// It is copied from the customer's address book so later edits to the book
// do not change where a placed order ships.
type ShippingAddress struct {
	recipient string
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewShippingAddress creates a shipping destination snapshot.
// Recipient, phone and the flattened address line are all required.
func NewShippingAddress(recipient string, phone string, address string) (ShippingAddress, error) {
	if recipient == "" {
		return ShippingAddress{}, errs.NewValueIsRequiredError("recipient")
	}
	if phone == "" {
		return ShippingAddress{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return ShippingAddress{}, errs.NewValueIsRequiredError("address")
	}

	return ShippingAddress{
		recipient: recipient,
		phone:     phone,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through NewShippingAddress.
func (a ShippingAddress) Validate() error {
	return a.guard.Validate(ErrShippingAddressIsNotConstructed)
}

// Recipient returns the name of the person receiving the order.
func (a ShippingAddress) Recipient() string {
	return a.recipient
}

// Phone returns the contact phone number for the delivery.
func (a ShippingAddress) Phone() string {
	return a.phone
}

// Address returns the flattened address line (street, city, state, zip).
func (a ShippingAddress) Address() string {
	return a.address
}
