// Package order provides domain entities and business logic for the order
// lifecycle in the storefront system. It implements the Order aggregate root
// with fulfillment stage transitions and the cancellation/return request
// overlays.
//
// The package includes:
//   - Order: The aggregate root managing order identity, content, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item, ShippingAddress, Tracking: checkout-time snapshots of order content
//   - ReturnRequest: the customer's request to return a delivered order
//
// Key business rules:
//   - Orders must have a valid identifier, owning customer, and at least one item
//   - Fulfillment follows Processing -> Shipped -> Out for Delivery -> Delivered
//   - Cancellation may be requested only from Processing or Shipped
//   - A return may be requested only from Delivered, within the 7-day window
//   - Only the owning customer may request a cancellation or return
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
