package commands

import (
	"context"
)

// UpdateCartItemCommandHandler handles cart line quantity changes.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartItemCommandHandler creates a handler for quantity changes.
func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the quantity change command.
func (h *UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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

	if err = customerCart.UpdateQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
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
