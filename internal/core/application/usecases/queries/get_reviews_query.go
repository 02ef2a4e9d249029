package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetReviewsQueryIsNotConstructed = errors.New(
	"GetReviewsQuery must be created via NewGetReviewsQuery constructor",
)

// GetReviewsQuery retrieves all reviews for a product, newest first.
type GetReviewsQuery struct {
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewsQuery creates a review listing query for the given product.
func NewGetReviewsQuery(productID kernel.UUID) (GetReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetReviewsQuery{}, err
	}

	return GetReviewsQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewsQueryIsNotConstructed)
}

// ProductID returns the product whose reviews are requested.
func (q GetReviewsQuery) ProductID() kernel.UUID {
	return q.productID
}

// ReviewResponse is one product review.
type ReviewResponse struct {
	ID        kernel.UUID
	AuthorID  kernel.UUID
	Author    string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
