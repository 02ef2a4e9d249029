package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a checkout request. The order's items come
// from the customer's stored cart; the command carries only the delivery
// and payment choices.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(orderID, customerID, address, order.PaymentCashOnDelivery)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	shippingAddress order.ShippingAddress
	paymentMethod   order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order from the
// customer's cart, shipped to the given address and paid with the given
// method.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	shippingAddress order.ShippingAddress,
	paymentMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setOrderID(orderID),
		placeCommand.setCustomerID(customerID),
		placeCommand.setShippingAddress(shippingAddress),
		placeCommand.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer checking out.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ShippingAddress returns the delivery destination.
func (c PlaceOrderCommand) ShippingAddress() order.ShippingAddress {
	return c.shippingAddress
}

// PaymentMethod returns the chosen payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setShippingAddress(shippingAddress order.ShippingAddress) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}

	c.shippingAddress = shippingAddress
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
