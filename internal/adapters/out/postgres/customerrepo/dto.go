// Package customerrepo provides data transfer objects and mapping functions
// for customer account persistence. The address book is stored in its own
// table and loaded with the customer.
package customerrepo

import (
	"github.com/google/uuid"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for customer accounts.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash []byte
	Name         string
	Phone        string
	Addresses    []AddressDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents one saved address in the addresses table.
type AddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Label      string
	Recipient  string
	Line       string
	Phone      string
	IsDefault  bool
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
	}

	for _, address := range aggregate.Addresses() {
		dto.Addresses = append(dto.Addresses, AddressDTO{
			ID:         address.ID().Bytes(),
			CustomerID: dto.ID,
			Label:      address.Label(),
			Recipient:  address.Recipient(),
			Line:       address.Line(),
			Phone:      address.Phone(),
			IsDefault:  address.IsDefault(),
		})
	}

	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addresses := make([]customer.Address, 0, len(dto.Addresses))
	for _, addressDTO := range dto.Addresses {
		addressID, idErr := kernel.UUIDFromBytes(addressDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		address, addrErr := customer.RestoreAddress(
			addressID, addressDTO.Label, addressDTO.Recipient, addressDTO.Line, addressDTO.Phone, addressDTO.IsDefault,
		)
		if addrErr != nil {
			return nil, addrErr
		}
		addresses = append(addresses, address)
	}

	return customer.RestoreCustomer(id, dto.Email, dto.PasswordHash, dto.Name, dto.Phone, addresses)
}
