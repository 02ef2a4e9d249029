package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

func storedReview(t *testing.T, authorID kernel.UUID) *product.Review {
	t.Helper()
	review, err := product.NewReview(
		kernel.NewUUID(), kernel.NewUUID(), authorID,
		"A. Sharma", 4, "Fits well.", time.Now(),
	)
	require.NoError(t, err)
	return review
}

func TestDeleteReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	authorID := kernel.NewUUID()
	review := storedReview(t, authorID)
	cmd, err := commands.NewDeleteReviewCommand(review.ID(), authorID)
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, review.ID()).Return(review, nil).Once(),
		repo.On("Delete", mock.Anything, review.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestDeleteReviewCommandHandler_Handle_NotAuthor(t *testing.T) {
	ctx := t.Context()
	review := storedReview(t, kernel.NewUUID())
	cmd, err := commands.NewDeleteReviewCommand(review.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, review.ID()).Return(review, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
