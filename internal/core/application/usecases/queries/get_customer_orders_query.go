// Package queries contains read-side operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL and return
// flat response structs, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history, most recent
// first.
//
// Example:
//
//	query, err := NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// OrderResponse is one order in the customer's history, shaped for direct
// rendering: status as display text, eligibility flags precomputed.
type OrderResponse struct {
	ID               kernel.UUID
	Status           string
	PlacedAt         time.Time
	DeliveredAt      *time.Time
	Total            int64
	PaymentMethod    string
	IsReturnEligible bool
	Items            []OrderItemResponse
	ShippingAddress  ShippingAddressResponse
	Tracking         *TrackingResponse
	ReturnRequest    *ReturnRequestResponse
}

// OrderItemResponse is a purchased line within an order.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Price     int64
	Image     string
	Quantity  int
	Size      string
}

// ShippingAddressResponse is the destination snapshot taken at checkout.
type ShippingAddressResponse struct {
	Recipient string
	Phone     string
	Line      string
}

// TrackingResponse is the carrier reference for a shipped order.
type TrackingResponse struct {
	Provider string
	Number   string
}

// ReturnRequestResponse describes an order's pending or resolved return.
type ReturnRequestResponse struct {
	Reason      string
	Comments    string
	RequestDate time.Time
	Status      string
}
