// Package reviewrepo provides data transfer objects and mapping functions
// for product review persistence.
package reviewrepo

import (
	"time"

	"github.com/google/uuid"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ReviewDTO represents the database structure for product reviews.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;index"`
	Author    string
	Rating    int
	Comment   string
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *product.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),
		AuthorID:  aggregate.AuthorID().Bytes(),
		Author:    aggregate.Author(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*product.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	authorID, err := kernel.UUIDFromBytes(dto.AuthorID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreReview(id, productID, authorID, dto.Author, dto.Rating, dto.Comment, dto.CreatedAt)
}
