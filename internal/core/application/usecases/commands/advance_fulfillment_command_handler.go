package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

const trackingProvider = "BlueDart"

// AdvanceFulfillmentCommandHandler progresses every in-flight order one
// fulfillment stage. Orders entering Shipped get a tracking assignment;
// orders reaching Delivered get their delivery timestamp recorded.
type AdvanceFulfillmentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderStatusNotifier
}

// NewAdvanceFulfillmentCommandHandler creates a handler for fulfillment
// progression.
func NewAdvanceFulfillmentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderStatusNotifier,
) AdvanceFulfillmentCommandHandler {
	return AdvanceFulfillmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the progression command.
// Each order is updated conditionally on the status it was read with. An
// order that a customer moved concurrently (for example into Cancellation
// Requested) is skipped this round instead of being overwritten.
func (h *AdvanceFulfillmentCommandHandler) Handle(ctx context.Context, cmd AdvanceFulfillmentCommand) error {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInFulfillment(ctx)
	if err != nil {
		return err
	}

	var advanced []*order.Order
	for _, aggregate := range orders {
		expectedStatus := aggregate.Status()
		if err = h.advanceOrder(aggregate); err != nil {
			return err
		}

		err = orderRepo.Update(ctx, aggregate, expectedStatus)
		if errors.Is(err, ports.ErrConcurrentOrderUpdate) {
			continue
		}
		if err != nil {
			return err
		}

		advanced = append(advanced, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range advanced {
		// Best effort: the status changes are already committed.
		_ = h.notifier.PublishStatusChanged(ctx, aggregate)
	}

	return nil
}

// advanceOrder moves a single order one stage forward and assigns tracking
// when the order enters the Shipped stage.
func (h *AdvanceFulfillmentCommandHandler) advanceOrder(aggregate *order.Order) error {
	if err := aggregate.AdvanceFulfillment(time.Now()); err != nil {
		return err
	}

	if aggregate.Status() != order.Shipped || aggregate.Tracking() != nil {
		return nil
	}

	tracking, err := order.NewTracking(trackingProvider, trackingNumber(aggregate))
	if err != nil {
		return err
	}

	return aggregate.AssignTracking(tracking)
}

func trackingNumber(aggregate *order.Order) string {
	compact := strings.ToUpper(strings.ReplaceAll(aggregate.ID().String(), "-", ""))
	return "BD" + compact[:12]
}
