// Package customer provides the Customer aggregate: account credentials,
// profile data and the customer's saved shipping addresses.
package customer

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory functions.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

const minPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Customer is an account holder. The password is stored only as a bcrypt
// hash; at most one of the customer's addresses is the default.
type Customer struct {
	id           kernel.UUID
	email        string
	passwordHash []byte
	name         string
	phone        string
	addresses    []Address

	isConstructed bool
}

// NewCustomer registers an account. The plaintext password must be at least
// 8 characters and is hashed before being stored.
func NewCustomer(id kernel.UUID, email string, password string, name string, phone string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", minPasswordLength))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password", err)
	}

	return &Customer{
		id:            id,
		email:         email,
		passwordHash:  hash,
		name:          name,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence with an already
// hashed password.
func RestoreCustomer(
	id kernel.UUID,
	email string,
	passwordHash []byte,
	name string,
	phone string,
	addresses []Address,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	for _, address := range addresses {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	return &Customer{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		name:          name,
		phone:         phone,
		addresses:     append([]Address(nil), addresses...),
		isConstructed: true,
	}, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Email returns the login email.
func (c *Customer) Email() string {
	return c.email
}

// PasswordHash returns the stored bcrypt hash.
func (c *Customer) PasswordHash() []byte {
	return c.passwordHash
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone, if any.
func (c *Customer) Phone() string {
	return c.phone
}

// Addresses returns a copy of the customer's saved addresses.
func (c *Customer) Addresses() []Address {
	return append([]Address(nil), c.addresses...)
}

// VerifyPassword reports whether the plaintext password matches the stored
// hash.
func (c *Customer) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) == nil
}

// AddAddress saves a new address. The first address always becomes the
// default; marking a later address as default demotes the previous one.
func (c *Customer) AddAddress(address Address, makeDefault bool) error {
	if err := address.Validate(); err != nil {
		return err
	}

	if len(c.addresses) == 0 || makeDefault {
		for i := range c.addresses {
			c.addresses[i].isDefault = false
		}
		address.isDefault = true
	}

	c.addresses = append(c.addresses, address)
	return nil
}

// DefaultAddress returns the default shipping address, when one exists.
func (c *Customer) DefaultAddress() (Address, bool) {
	for _, address := range c.addresses {
		if address.isDefault {
			return address, true
		}
	}
	return Address{}, false
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	return nil
}
