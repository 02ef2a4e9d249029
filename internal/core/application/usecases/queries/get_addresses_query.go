package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetAddressesQueryIsNotConstructed = errors.New(
	"GetAddressesQuery must be created via NewGetAddressesQuery constructor",
)

// GetAddressesQuery retrieves the customer's address book, default first.
type GetAddressesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAddressesQuery creates an address book query for the given customer.
func NewGetAddressesQuery(customerID kernel.UUID) (GetAddressesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetAddressesQuery{}, err
	}

	return GetAddressesQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAddressesQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressesQueryIsNotConstructed)
}

// CustomerID returns the address book owner's identifier.
func (q GetAddressesQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// AddressResponse is one saved address.
type AddressResponse struct {
	ID        kernel.UUID
	Label     string
	Recipient string
	Line      string
	Phone     string
	IsDefault bool
}
