package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// PlaceOrderCommandHandler handles checkout. Prices the customer's cart,
// creates the order and clears the cart in one transaction, then announces
// the new order's status.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	pricer     services.OrderPricer
	notifier   ports.OrderStatusNotifier
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	notifier ports.OrderStatusNotifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
		notifier:   notifier,
	}
}

// Handle processes the checkout command.
// The order and the emptied cart commit atomically: a failure at any step
// leaves both the cart and the order store untouched.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	items, total, err := h.pricer.Price(customerCart, cmd.PaymentMethod())
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		items,
		cmd.ShippingAddress(),
		cmd.PaymentMethod(),
		total,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	customerCart.Clear()
	if err = cartRepo.Save(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the order is already committed.
	_ = h.notifier.PublishStatusChanged(ctx, aggregate)

	return nil
}
