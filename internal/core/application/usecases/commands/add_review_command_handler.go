package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/product"
)

// AddReviewCommandHandler handles review submission. Confirms the reviewed
// product exists before persisting the review.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review submission.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	review, err := product.NewReview(
		cmd.ReviewID(),
		cmd.ProductID(),
		cmd.AuthorID(),
		cmd.Author(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ReviewRepository().Add(ctx, review); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
