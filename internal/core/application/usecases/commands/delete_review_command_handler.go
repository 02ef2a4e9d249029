package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// DeleteReviewCommandHandler handles review deletion. Only the review's
// author may delete it.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewDeleteReviewCommandHandler creates a handler for review deletion.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review deletion command.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	review, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}

	if !review.AuthoredBy(cmd.RequesterID()) {
		return errs.NewNotAuthorizedError("review", cmd.ReviewID(), cmd.RequesterID())
	}

	if err = reviewRepo.Delete(ctx, cmd.ReviewID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
