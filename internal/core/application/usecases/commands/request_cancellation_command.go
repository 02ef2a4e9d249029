package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRequestCancellationCommandIsNotConstructed = errors.New(
	"RequestCancellationCommand must be created via NewRequestCancellationCommand constructor",
)

// RequestCancellationCommand represents a customer's request to cancel one
// of their orders. The order must still be in a cancellable fulfillment
// stage when the command is handled.
//
// Example:
//
//	cmd, err := NewRequestCancellationCommand(orderID, customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid cancellation request: %w", err)
//	}
//
//	handler := NewRequestCancellationCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("cancellation request failed: %w", err)
//	}
type RequestCancellationCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestCancellationCommand creates a command to request cancellation of
// an order on behalf of the given customer.
func NewRequestCancellationCommand(orderID kernel.UUID, requesterID kernel.UUID) (RequestCancellationCommand, error) {
	cancelCommand := RequestCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setRequesterID(requesterID),
	); err != nil {
		return RequestCancellationCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestCancellationCommand) Validate() error {
	return c.guard.Validate(ErrRequestCancellationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c RequestCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the customer making the request.
func (c RequestCancellationCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *RequestCancellationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestCancellationCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
