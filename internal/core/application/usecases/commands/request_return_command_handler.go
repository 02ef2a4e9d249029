package commands

import (
	"context"
	"time"

	"storefront/internal/core/ports"
)

// RequestReturnCommandHandler handles customer return requests.
// Loads the order, lets the aggregate verify ownership, delivery stage and
// the return window, and persists the new status with a conditional write.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderStatusNotifier
}

// NewRequestReturnCommandHandler creates a handler for return requests.
func NewRequestReturnCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderStatusNotifier,
) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the return request. The eligibility window is evaluated
// against the current time; the conditional update guarantees a concurrent
// status change fails this request rather than being silently lost.
func (h *RequestReturnCommandHandler) Handle(ctx context.Context, cmd RequestReturnCommand) error {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	if err = aggregate.RequestReturn(cmd.RequesterID(), cmd.Reason(), cmd.Comments(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best effort: the status change is already committed.
	_ = h.notifier.PublishStatusChanged(ctx, aggregate)

	return nil
}
