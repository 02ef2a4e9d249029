package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentMethod identifies how the customer pays for an order.
// Cash-on-delivery orders start fulfillment immediately; every other method
// waits for external payment confirmation.
type PaymentMethod string

const (
	// PaymentCashOnDelivery is paid in cash when the parcel arrives.
	// It carries a flat surcharge added at checkout.
	PaymentCashOnDelivery PaymentMethod = "cod"

	// PaymentCard is an online card payment confirmed externally.
	PaymentCard PaymentMethod = "card"

	// PaymentUPI is a UPI transfer confirmed externally.
	PaymentUPI PaymentMethod = "upi"
)

// Validate checks that the payment method is one of the supported values.
func (p PaymentMethod) Validate() error {
	switch p {
	case PaymentCashOnDelivery, PaymentCard, PaymentUPI:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(p)))
	}
}

// IsCashOnDelivery reports whether the method is cash-on-delivery.
func (p PaymentMethod) IsCashOnDelivery() bool {
	return p == PaymentCashOnDelivery
}

// String returns the wire representation of the payment method.
func (p PaymentMethod) String() string {
	return string(p)
}
