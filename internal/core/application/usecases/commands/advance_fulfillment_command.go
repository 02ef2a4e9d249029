package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrAdvanceFulfillmentCommandIsNotConstructed = errors.New(
	"AdvanceFulfillmentCommand must be created via NewAdvanceFulfillmentCommand constructor",
)

// AdvanceFulfillmentCommand triggers progression of every order still in
// the fulfillment pipeline: Processing to Shipped, Shipped to Out for
// Delivery, Out for Delivery to Delivered.
//
// Example:
//
//	cmd := NewAdvanceFulfillmentCommand()
//	handler := NewAdvanceFulfillmentCommandHandler(uowFactory, notifier)
//
//	// Run periodically from the fulfillment job
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("fulfillment progression failed: %v", err)
//	}
type AdvanceFulfillmentCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceFulfillmentCommand creates a command to progress all in-flight
// orders. This is a parameterless batch command.
func NewAdvanceFulfillmentCommand() AdvanceFulfillmentCommand {
	command := AdvanceFulfillmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceFulfillmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceFulfillmentCommandIsNotConstructed)
}
