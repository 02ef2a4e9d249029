package customer

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a saved shipping destination. Label distinguishes entries in
// the address book ("Home", "Office").
type Address struct {
	id        kernel.UUID
	label     string
	recipient string
	line      string
	phone     string
	isDefault bool

	isConstructed bool
}

// NewAddress creates an address book entry. Whether it becomes the default
// is decided by Customer.AddAddress, not here.
func NewAddress(id kernel.UUID, label string, recipient string, line string, phone string) (Address, error) {
	if err := id.Validate(); err != nil {
		return Address{}, err
	}
	if label == "" {
		return Address{}, errs.NewValueIsRequiredError("label")
	}
	if recipient == "" {
		return Address{}, errs.NewValueIsRequiredError("recipient")
	}
	if line == "" {
		return Address{}, errs.NewValueIsRequiredError("line")
	}
	if phone == "" {
		return Address{}, errs.NewValueIsRequiredError("phone")
	}

	return Address{
		id:            id,
		label:         label,
		recipient:     recipient,
		line:          line,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreAddress reconstructs an address from persistence, including its
// default flag.
func RestoreAddress(id kernel.UUID, label string, recipient string, line string, phone string, isDefault bool) (Address, error) {
	address, err := NewAddress(id, label, recipient, line, phone)
	if err != nil {
		return Address{}, err
	}
	address.isDefault = isDefault
	return address, nil
}

// Validate ensures the address was created through a constructor.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// ID returns the address identifier.
func (a Address) ID() kernel.UUID {
	return a.id
}

// Label returns the address book label.
func (a Address) Label() string {
	return a.label
}

// Recipient returns the name of the person receiving deliveries.
func (a Address) Recipient() string {
	return a.recipient
}

// Line returns the full address text.
func (a Address) Line() string {
	return a.line
}

// Phone returns the contact phone for deliveries.
func (a Address) Phone() string {
	return a.phone
}

// IsDefault reports whether this is the customer's default address.
func (a Address) IsDefault() bool {
	return a.isDefault
}
