package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

// DeleteReviewCommand represents a customer's request to remove one of
// their own reviews.
type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID    kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReviewCommand creates a command to delete a review on behalf of
// the given customer.
func NewDeleteReviewCommand(reviewID kernel.UUID, requesterID kernel.UUID) (DeleteReviewCommand, error) {
	deleteCommand := DeleteReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setReviewID(reviewID),
		deleteCommand.setRequesterID(requesterID),
	); err != nil {
		return DeleteReviewCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review to delete.
func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// RequesterID returns the identifier of the customer making the request.
func (c DeleteReviewCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *DeleteReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *DeleteReviewCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
