package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddReviewCommandIsNotConstructed = errors.New(
		"AddReviewCommand must be created via NewAddReviewCommand constructor",
	)
	ErrReviewCommentIsRequired = errors.New("comment is required")
	ErrReviewAuthorIsRequired  = errors.New("author is required")
)

// AddReviewCommand represents a customer's request to review a product.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID  kernel.UUID
	productID kernel.UUID
	authorID  kernel.UUID
	author    string
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to attach a review to a product.
// The rating range is enforced by the Review aggregate when the command is
// handled.
func NewAddReviewCommand(
	reviewID kernel.UUID,
	productID kernel.UUID,
	authorID kernel.UUID,
	author string,
	rating int,
	comment string,
) (AddReviewCommand, error) {
	reviewCommand := AddReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setProductID(productID),
		reviewCommand.setAuthorID(authorID),
		reviewCommand.setAuthor(author),
		reviewCommand.setComment(comment),
	); err != nil {
		return AddReviewCommand{}, err
	}

	reviewCommand.rating = rating

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ProductID returns the identifier of the reviewed product.
func (c AddReviewCommand) ProductID() kernel.UUID {
	return c.productID
}

// AuthorID returns the identifier of the reviewing customer.
func (c AddReviewCommand) AuthorID() kernel.UUID {
	return c.authorID
}

// Author returns the reviewing customer's display name.
func (c AddReviewCommand) Author() string {
	return c.author
}

// Rating returns the submitted star rating.
func (c AddReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the review text.
func (c AddReviewCommand) Comment() string {
	return c.comment
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddReviewCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}

func (c *AddReviewCommand) setAuthor(author string) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return ErrReviewAuthorIsRequired
	}

	c.author = author
	return nil
}

func (c *AddReviewCommand) setComment(comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrReviewCommentIsRequired
	}

	c.comment = comment
	return nil
}
