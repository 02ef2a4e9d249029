package commands

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// AddCartItemCommandHandler handles adding catalog products to a cart.
// The cart line snapshots the product's current name, price and image.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// A request for a size the product does not offer is rejected before the
// cart is touched.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	catalogProduct, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if cmd.Size() != "" && !catalogProduct.HasSize(cmd.Size()) {
		return errs.NewValueIsInvalidError("size")
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	line, err := cart.NewItem(
		kernel.NewUUID(),
		catalogProduct.ID(),
		catalogProduct.Name(),
		catalogProduct.Price(),
		catalogProduct.PrimaryImage(),
		cmd.Size(),
		cmd.Quantity(),
	)
	if err != nil {
		return err
	}

	if err = customerCart.AddItem(line); err != nil {
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
