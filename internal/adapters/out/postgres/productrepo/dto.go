// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"encoding/json"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for catalog products.
// Images and sizes are stored as JSON arrays.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index"`
	Price         int64
	OriginalPrice *int64
	Images        []byte `gorm:"type:jsonb"`
	Category      string `gorm:"index"`
	Description   string
	Sizes         []byte `gorm:"type:jsonb"`
	Stock         int
	Trending      bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) (ProductDTO, error) {
	images, err := json.Marshal(aggregate.Images())
	if err != nil {
		return ProductDTO{}, err
	}

	sizes, err := json.Marshal(aggregate.Sizes())
	if err != nil {
		return ProductDTO{}, err
	}

	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price(),
		OriginalPrice: aggregate.OriginalPrice(),
		Images:        images,
		Category:      aggregate.Category(),
		Description:   aggregate.Description(),
		Sizes:         sizes,
		Stock:         aggregate.Stock(),
		Trending:      aggregate.IsTrending(),
	}, nil
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var images []string
	if len(dto.Images) > 0 {
		if err = json.Unmarshal(dto.Images, &images); err != nil {
			return nil, err
		}
	}

	var sizes []string
	if len(dto.Sizes) > 0 {
		if err = json.Unmarshal(dto.Sizes, &sizes); err != nil {
			return nil, err
		}
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Price,
		dto.OriginalPrice,
		images,
		dto.Category,
		dto.Description,
		sizes,
		dto.Stock,
		dto.Trending,
	)
}
