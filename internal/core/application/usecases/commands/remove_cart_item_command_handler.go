package commands

import (
	"context"
)

// RemoveCartItemCommandHandler handles cart line removal.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customerCart.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
