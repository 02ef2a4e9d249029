// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is stored as its lines only, keyed by customer;
// an absent row set is an empty cart.
package cartrepo

import (
	"github.com/google/uuid"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// ItemDTO represents one cart line in the cart_items table.
type ItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	Name       string
	Price      int64
	Image      string
	Size       string
	Quantity   int
}

// TableName specifies the database table name for cart lines.
func (ItemDTO) TableName() string {
	return "cart_items"
}

func fromDomain(aggregate *cart.Cart) []ItemDTO {
	customerID := aggregate.CustomerID().Bytes()
	dtos := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dtos = append(dtos, ItemDTO{
			ID:         item.ID().Bytes(),
			CustomerID: customerID,
			ProductID:  item.ProductID().Bytes(),
			Name:       item.Name(),
			Price:      item.Price(),
			Image:      item.Image(),
			Size:       item.Size(),
			Quantity:   item.Quantity(),
		})
	}

	return dtos
}

func toDomain(customerID kernel.UUID, dtos []ItemDTO) (*cart.Cart, error) {
	items := make([]cart.Item, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}

		item, err := cart.NewItem(id, productID, dto.Name, dto.Price, dto.Image, dto.Size, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(customerID, items)
}
