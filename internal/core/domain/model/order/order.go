package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without any purchased lines.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// ReturnWindow is how long after delivery a return may still be requested.
// The check is strict: the reference timestamp must be strictly after
// now minus the window.
const ReturnWindow = 7 * 24 * time.Hour

// Order represents a customer purchase in the system. It is the aggregate root
// that manages the order lifecycle from checkout through fulfillment, including
// the cancellation and return request overlays.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Must contain at least one item; content is immutable after placement
//   - Status transitions follow the rules defined on Status
//   - Cancellation and return requests are granted only to the owning customer
//   - At most one return request is attached, and only within the return window
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning customer; set at creation, never changed
	customerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// placedAt is the checkout timestamp
	placedAt time.Time

	// deliveredAt is set when fulfillment reaches Delivered (nil before that)
	deliveredAt *time.Time

	// total is the grand total charged at checkout, in whole currency units
	total int64

	// items are the purchased lines, snapshotted at checkout
	items []Item

	// shippingAddress is the destination snapshotted at checkout
	shippingAddress ShippingAddress

	// paymentMethod selects the initial status (cod starts Processing)
	paymentMethod PaymentMethod

	// tracking is the carrier reference, attached when the order ships
	tracking *Tracking

	// returnRequest is attached at most once, by RequestReturn
	returnRequest *ReturnRequest

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at checkout. This is the only way to create
// a valid order from scratch, ensuring all business invariants hold.
//
// The initial status depends on the payment method: cash-on-delivery orders
// start in Processing, all other methods start in PaymentPending until an
// external payment confirmation arrives.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the verified identity placing the order
//   - items: purchased lines (at least one)
//   - shippingAddress: destination snapshot
//   - paymentMethod: how the order is paid
//   - total: grand total in whole currency units (must be positive)
//   - placedAt: checkout timestamp
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	shippingAddress ShippingAddress,
	paymentMethod PaymentMethod,
	total int64,
	placedAt time.Time,
) (*Order, error) {
	initialStatus := PaymentPending
	if paymentMethod.IsCashOnDelivery() {
		initialStatus = Processing
	}

	o := &Order{
		status:        initialStatus,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// checkout rules. The stored status is validated but otherwise trusted;
// deliveredAt, tracking and returnRequest are optional.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	placedAt time.Time,
	deliveredAt *time.Time,
	total int64,
	items []Item,
	shippingAddress ShippingAddress,
	paymentMethod PaymentMethod,
	tracking *Tracking,
	returnRequest *ReturnRequest,
) (*Order, error) {
	o := &Order{
		status:        status,
		placedAt:      placedAt,
		deliveredAt:   deliveredAt,
		tracking:      tracking,
		returnRequest: returnRequest,
		isConstructed: true,
	}

	if err := errors.Join(
		status.Validate(),
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns the checkout timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveredAt returns the delivery timestamp, or nil if the order has not
// been delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Total returns the grand total in whole currency units.
func (o *Order) Total() int64 {
	return o.total
}

// Items returns a copy of the purchased lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ShippingAddress returns the destination snapshot.
func (o *Order) ShippingAddress() ShippingAddress {
	return o.shippingAddress
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Tracking returns the carrier reference, or nil before the order ships.
func (o *Order) Tracking() *Tracking {
	return o.tracking
}

// ReturnRequest returns the attached return request, or nil if none was made.
func (o *Order) ReturnRequest() *ReturnRequest {
	return o.returnRequest
}

// RequestCancellation records the owning customer's request to cancel the
// order before it is delivered.
//
// Business rules:
//   - The requester must be the owning customer
//   - The order must be in Processing or Shipped status
//
// On success the status becomes CancellationRequested. The order content is
// untouched; resolution of the request happens externally.
func (o *Order) RequestCancellation(requesterID kernel.UUID) error {
	if err := o.authorize(requesterID); err != nil {
		return err
	}

	newStatus, err := o.status.RequestCancellation()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// RequestReturn records the owning customer's request to return a delivered
// order.
//
// Business rules:
//   - The requester must be the owning customer
//   - The order must be in Delivered status
//   - The delivery must lie strictly within the return window; the delivery
//     timestamp is used when known, with the checkout timestamp as fallback
//   - The reason must be at least MinReturnReasonLength characters
//
// On success the status becomes ReturnRequested and a pending ReturnRequest
// is attached. The request is attached at most once: a second call fails the
// stage check because the order is no longer Delivered.
func (o *Order) RequestReturn(requesterID kernel.UUID, reason string, comments string, now time.Time) error {
	if err := o.authorize(requesterID); err != nil {
		return err
	}

	if err := o.status.ValidateRequestReturn(); err != nil {
		return err
	}

	if !o.returnReference().After(now.Add(-ReturnWindow)) {
		return errs.NewInvalidStageErrorWithCause("request return", o.status.String(),
			fmt.Errorf("the return window of %d days has passed", int(ReturnWindow.Hours()/24)))
	}

	returnRequest, err := NewReturnRequest(reason, comments, now)
	if err != nil {
		return err
	}

	newStatus, err := o.status.RequestReturn()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.returnRequest = &returnRequest
	return nil
}

// AdvanceFulfillment moves the order one step along the fulfillment path.
// Used by the fulfillment progression job standing in for the external
// warehouse system. When the order reaches Delivered, the delivery timestamp
// is recorded; the return window is measured from it.
func (o *Order) AdvanceFulfillment(now time.Time) error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	return nil
}

// AssignTracking attaches carrier tracking details to a shipped order.
// Tracking cannot be attached before the order leaves the warehouse.
func (o *Order) AssignTracking(tracking Tracking) error {
	if err := tracking.Validate(); err != nil {
		return err
	}

	if o.status != Shipped && o.status != OutForDelivery && o.status != Delivered {
		return errs.NewInvalidStageError("assign tracking", o.status.String())
	}

	o.tracking = &tracking
	return nil
}

// IsReturnEligible reports whether the owning customer could still open a
// return request at the given time. Used by the order listing so clients can
// show the return action without re-deriving the window rule.
func (o *Order) IsReturnEligible(now time.Time) bool {
	if o.status != Delivered || o.returnRequest != nil {
		return false
	}
	return o.returnReference().After(now.Add(-ReturnWindow))
}

// returnReference is the timestamp the return window is measured from:
// the delivery timestamp when known, otherwise the checkout timestamp.
func (o *Order) returnReference() time.Time {
	if o.deliveredAt != nil {
		return *o.deliveredAt
	}
	return o.placedAt
}

// authorize checks that the requester is the owning customer.
func (o *Order) authorize(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	if !o.customerID.IsEqual(requesterID) {
		return errs.NewNotAuthorizedError("order", o.id.String(), requesterID.String())
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the purchased lines.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setShippingAddress validates and sets the destination snapshot.
// This is a private method used only during construction.
func (o *Order) setShippingAddress(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setTotal validates and sets the grand total.
// This is a private method used only during construction.
func (o *Order) setTotal(total int64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d is not greater than 0", total))
	}
	o.total = total
	return nil
}
