package services

import (
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when checkout is attempted with no cart lines.
var ErrCartIsEmpty = errors.New("cart is empty")

// Pricing rules, in whole currency units. Orders above the threshold ship
// free; cash on delivery carries a flat handling surcharge.
const (
	FreeShippingThreshold = 5000
	StandardShippingFee   = 500
	CashOnDeliveryFee     = 30
)

// OrderPricer is a domain service that converts a customer's cart into
// order lines and computes the grand total for checkout.
//
// Business rules:
//   - The cart must contain at least one line
//   - Shipping is free above FreeShippingThreshold, otherwise StandardShippingFee
//   - Cash on delivery adds CashOnDeliveryFee on top
//
// Example usage:
//
//	pricer := NewOrderPricer()
//	items, total, err := pricer.Price(customerCart, order.PaymentCashOnDelivery)
//	if errors.Is(err, ErrCartIsEmpty) {
//	    // Nothing to check out
//	    return
//	}
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price converts the cart's lines into order items and returns them with
// the grand total: subtotal plus shipping plus any payment surcharge.
func (p OrderPricer) Price(customerCart *cart.Cart, paymentMethod order.PaymentMethod) ([]order.Item, int64, error) {
	if err := customerCart.Validate(); err != nil {
		return nil, 0, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, 0, err
	}
	if customerCart.IsEmpty() {
		return nil, 0, ErrCartIsEmpty
	}

	var items []order.Item
	for _, line := range customerCart.Items() {
		item, err := order.NewItem(
			line.ProductID(),
			line.Name(),
			line.Price(),
			line.Image(),
			line.Quantity(),
			line.Size(),
		)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	total := customerCart.Subtotal() + p.ShippingFee(customerCart.Subtotal())
	if paymentMethod.IsCashOnDelivery() {
		total += CashOnDeliveryFee
	}

	return items, total, nil
}

// ShippingFee returns the delivery charge for the given subtotal.
func (p OrderPricer) ShippingFee(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}
