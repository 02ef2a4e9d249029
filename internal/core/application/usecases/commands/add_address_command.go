package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddAddressCommandIsNotConstructed = errors.New(
		"AddAddressCommand must be created via NewAddAddressCommand constructor",
	)
	ErrAddressLabelIsRequired     = errors.New("label is required")
	ErrAddressRecipientIsRequired = errors.New("recipient is required")
	ErrAddressLineIsRequired      = errors.New("line is required")
	ErrAddressPhoneIsRequired     = errors.New("phone is required")
)

// AddAddressCommand represents a request to save a shipping address to the
// customer's address book, optionally as the new default.
type AddAddressCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	addressID   kernel.UUID
	label       string
	recipient   string
	line        string
	phone       string
	makeDefault bool

	guard guard.ConstructorGuard
}

// NewAddAddressCommand creates a command to save a new address.
func NewAddAddressCommand(
	customerID kernel.UUID,
	addressID kernel.UUID,
	label string,
	recipient string,
	line string,
	phone string,
	makeDefault bool,
) (AddAddressCommand, error) {
	addCommand := AddAddressCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setAddressID(addressID),
		addCommand.setLabel(label),
		addCommand.setRecipient(recipient),
		addCommand.setLine(line),
		addCommand.setPhone(phone),
	); err != nil {
		return AddAddressCommand{}, err
	}

	addCommand.makeDefault = makeDefault

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddAddressCommand) Validate() error {
	return c.guard.Validate(ErrAddAddressCommandIsNotConstructed)
}

// CustomerID returns the address book owner's identifier.
func (c AddAddressCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AddressID returns the identifier assigned to the new address.
func (c AddAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

// Label returns the address book label.
func (c AddAddressCommand) Label() string {
	return c.label
}

// Recipient returns the delivery recipient's name.
func (c AddAddressCommand) Recipient() string {
	return c.recipient
}

// Line returns the full address text.
func (c AddAddressCommand) Line() string {
	return c.line
}

// Phone returns the delivery contact phone.
func (c AddAddressCommand) Phone() string {
	return c.phone
}

// MakeDefault reports whether the new address should become the default.
func (c AddAddressCommand) MakeDefault() bool {
	return c.makeDefault
}

func (c *AddAddressCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddAddressCommand) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}

	c.addressID = addressID
	return nil
}

func (c *AddAddressCommand) setLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrAddressLabelIsRequired
	}

	c.label = label
	return nil
}

func (c *AddAddressCommand) setRecipient(recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return ErrAddressRecipientIsRequired
	}

	c.recipient = recipient
	return nil
}

func (c *AddAddressCommand) setLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return ErrAddressLineIsRequired
	}

	c.line = line
	return nil
}

func (c *AddAddressCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrAddressPhoneIsRequired
	}

	c.phone = phone
	return nil
}
