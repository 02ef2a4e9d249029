package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
	ErrNameIsRequired     = errors.New("name is required")
)

// RegisterCustomerCommand represents an account signup request. Credential
// rules (email format, password length) are enforced by the Customer
// aggregate when the command is handled.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	email      string
	password   string
	name       string
	phone      string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a new account.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	email string,
	password string,
	name string,
	phone string,
) (RegisterCustomerCommand, error) {
	registerCommand := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setCustomerID(customerID),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setName(name),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	registerCommand.phone = strings.TrimSpace(phone)

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new account.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Email returns the login email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed by the Customer
// aggregate and never stored.
func (c RegisterCustomerCommand) Password() string {
	return c.password
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Phone returns the optional contact phone.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
