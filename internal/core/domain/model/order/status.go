package order

import (
	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment workflow and the cancellation/return request overlays.
//
// Fulfillment path:
//
//	PaymentPending ──(external payment confirmation)──> Processing
//	Processing ──> Shipped ──> OutForDelivery ──> Delivered
//
// Request overlays:
//
//	Processing, Shipped ──(cancellation request)──> CancellationRequested
//	Delivered ──(return request, within window)──> ReturnRequested
//
// Cancelled is a terminal state reached by external fulfillment updates.
// Status is a value object that validates state transitions and provides
// string representations for the API surface.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PaymentPending is the initial status for orders placed with a
	// non-cash payment method, awaiting external payment confirmation.
	PaymentPending

	// Processing is the initial status for cash-on-delivery orders and
	// the first fulfillment stage once payment is confirmed.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// OutForDelivery indicates the order is with the last-mile carrier.
	OutForDelivery

	// Delivered indicates the order reached the customer. A return may
	// still be requested within the return window.
	Delivered

	// Cancelled indicates the order will not be fulfilled.
	// This is a terminal state with no further transitions.
	Cancelled

	// CancellationRequested indicates the customer asked to cancel the
	// order before delivery. Resolution happens externally.
	CancellationRequested

	// ReturnRequested indicates the customer asked to return a delivered
	// order. The attached return request tracks the resolution.
	ReturnRequested
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "Unknown",
		PaymentPending:        "Payment Pending",
		Processing:            "Processing",
		Shipped:               "Shipped",
		OutForDelivery:        "Out for Delivery",
		Delivered:             "Delivered",
		Cancelled:             "Cancelled",
		CancellationRequested: "Cancellation Requested",
		ReturnRequested:       "Return Requested",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PaymentPending:        "Payment Pending",
		Processing:            "Processing",
		Shipped:               "Shipped",
		OutForDelivery:        "Out for Delivery",
		Delivered:             "Delivered",
		Cancelled:             "Cancelled",
		CancellationRequested: "Cancellation Requested",
		ReturnRequested:       "Return Requested",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(PaymentPending), int(ReturnRequested)))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateRequestCancellation checks if the status allows a cancellation
// request without performing the transition.
//
// A cancellation request is allowed only while the order has not left the
// delivery network: Processing or Shipped. Everything else is rejected.
func (s Status) ValidateRequestCancellation() error {
	if s != Processing && s != Shipped {
		return errs.NewInvalidStageError("request cancellation", s.String())
	}
	return nil
}

// RequestCancellation transitions the status to CancellationRequested.
//
// Valid transitions:
//   - Processing -> CancellationRequested
//   - Shipped -> CancellationRequested
//
// Returns (0, error) if the current status does not permit a cancellation
// request.
func (s Status) RequestCancellation() (Status, error) {
	if err := s.ValidateRequestCancellation(); err != nil {
		return 0, err
	}

	return CancellationRequested, nil
}

// ValidateRequestReturn checks if the status allows a return request
// without performing the transition. Only delivered orders may be returned;
// the time window is enforced by the order aggregate, which knows the
// delivery timestamp.
func (s Status) ValidateRequestReturn() error {
	if s != Delivered {
		return errs.NewInvalidStageError("request return", s.String())
	}
	return nil
}

// RequestReturn transitions the status to ReturnRequested.
//
// Valid transitions:
//   - Delivered -> ReturnRequested
//
// Returns (0, error) if the current status does not permit a return request.
func (s Status) RequestReturn() (Status, error) {
	if err := s.ValidateRequestReturn(); err != nil {
		return 0, err
	}

	return ReturnRequested, nil
}

// Advance moves the status one step along the fulfillment path.
//
// Valid transitions:
//   - Processing -> Shipped
//   - Shipped -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// PaymentPending orders are not advanced: payment confirmation is an
// external concern. All other statuses reject advancement.
func (s Status) Advance() (Status, error) {
	switch s { //nolint:exhaustive // remaining statuses share the rejection path
	case Processing:
		return Shipped, nil
	case Shipped:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	default:
		return 0, errs.NewInvalidStageError("advance fulfillment", s.String())
	}
}

// IsInFulfillment reports whether the order is moving through the
// fulfillment pipeline and is eligible for automatic stage advancement.
func (s Status) IsInFulfillment() bool {
	return s == Processing || s == Shipped || s == OutForDelivery
}
