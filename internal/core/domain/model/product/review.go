package product

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through the NewReview or RestoreReview factory functions.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview constructor")

const (
	minRating = 1
	maxRating = 5
)

// Review is a customer's rating and comment on a product. Only the author
// may delete their own review.
type Review struct {
	id        kernel.UUID
	productID kernel.UUID
	authorID  kernel.UUID
	author    string
	rating    int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewReview creates a review. Rating must be between 1 and 5 inclusive.
func NewReview(
	id kernel.UUID,
	productID kernel.UUID,
	authorID kernel.UUID,
	author string,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := authorID.Validate(); err != nil {
		return nil, err
	}
	if author == "" {
		return nil, errs.NewValueIsRequiredError("author")
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if comment == "" {
		return nil, errs.NewValueIsRequiredError("comment")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Review{
		id:            id,
		productID:     productID,
		authorID:      authorID,
		author:        author,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id kernel.UUID,
	productID kernel.UUID,
	authorID kernel.UUID,
	author string,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, productID, authorID, author, rating, comment, createdAt)
}

// Validate ensures the review was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// ProductID returns the identifier of the reviewed product.
func (r *Review) ProductID() kernel.UUID {
	return r.productID
}

// AuthorID returns the identifier of the customer who wrote the review.
func (r *Review) AuthorID() kernel.UUID {
	return r.authorID
}

// Author returns the display name of the review's author.
func (r *Review) Author() string {
	return r.author
}

// Rating returns the star rating, between 1 and 5.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the review text.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was submitted.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

// AuthoredBy reports whether the given customer wrote this review.
// Deletion is only permitted for the author.
func (r *Review) AuthoredBy(customerID kernel.UUID) bool {
	return r.authorID == customerID
}
