package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// RequestCancellationCommandHandler handles customer cancellation requests.
// Loads the order, verifies ownership and stage through the aggregate, and
// persists the new status with a conditional write so a concurrent status
// change is never overwritten.
type RequestCancellationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderStatusNotifier
}

// NewRequestCancellationCommandHandler creates a handler for cancellation
// requests. Requires an OrderUoWFactory for transactional persistence and a
// notifier for publishing the status change.
func NewRequestCancellationCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderStatusNotifier,
) RequestCancellationCommandHandler {
	return RequestCancellationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation request.
// The update is conditional on the status read in this transaction: when
// another request has already moved the order on, the write fails with
// ports.ErrConcurrentOrderUpdate instead of clobbering it.
func (h *RequestCancellationCommandHandler) Handle(ctx context.Context, cmd RequestCancellationCommand) error {
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
	if err = aggregate.RequestCancellation(cmd.RequesterID()); err != nil {
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
