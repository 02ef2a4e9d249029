package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// GetCustomerOrdersQueryHandler reads a customer's order history straight
// from the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history
// queries. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back most recent first with their
// lines attached and return eligibility evaluated against the current time.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, orderIDs, err := h.fetchOrders(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := h.fetchItems(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

func (h GetCustomerOrdersQueryHandler) fetchOrders(
	ctx context.Context,
	customerID kernel.UUID,
) ([]OrderResponse, []uuid.UUID, error) {
	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			placed_at,
			delivered_at,
			total,
			payment_method,
			shipping_recipient,
			shipping_phone,
			shipping_line,
			tracking_provider,
			tracking_number,
			return_reason,
			return_comments,
			return_request_date,
			return_status
		FROM orders
		WHERE customer_id = ?
		ORDER BY placed_at DESC
	`, customerID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	now := time.Now()
	for rows.Next() {
		var (
			id                uuid.UUID
			status            int
			placedAt          time.Time
			deliveredAt       *time.Time
			total             int64
			paymentMethod     string
			recipient         string
			phone             string
			line              string
			trackingProvider  *string
			trackingNumber    *string
			returnReason      *string
			returnComments    *string
			returnRequestDate *time.Time
			returnStatus      *int
		)

		err = rows.Scan(
			&id, &status, &placedAt, &deliveredAt, &total, &paymentMethod,
			&recipient, &phone, &line,
			&trackingProvider, &trackingNumber,
			&returnReason, &returnComments, &returnRequestDate, &returnStatus,
		)
		if err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}

		resp := OrderResponse{
			ID:            orderID,
			Status:        order.Status(status).String(),
			PlacedAt:      placedAt,
			DeliveredAt:   deliveredAt,
			Total:         total,
			PaymentMethod: paymentMethod,
			ShippingAddress: ShippingAddressResponse{
				Recipient: recipient,
				Phone:     phone,
				Line:      line,
			},
			IsReturnEligible: isReturnEligible(order.Status(status), placedAt, deliveredAt, now),
		}

		if trackingProvider != nil && trackingNumber != nil {
			resp.Tracking = &TrackingResponse{Provider: *trackingProvider, Number: *trackingNumber}
		}
		if returnReason != nil && returnRequestDate != nil && returnStatus != nil {
			resp.ReturnRequest = &ReturnRequestResponse{
				Reason:      *returnReason,
				RequestDate: *returnRequestDate,
				Status:      order.ReturnStatus(*returnStatus).String(),
			}
			if returnComments != nil {
				resp.ReturnRequest.Comments = *returnComments
			}
		}

		orders = append(orders, resp)
		orderIDs = append(orderIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, orderIDs, nil
}

func (h GetCustomerOrdersQueryHandler) fetchItems(
	ctx context.Context,
	orderIDs []uuid.UUID,
) (map[kernel.UUID][]OrderItemResponse, error) {
	items := make(map[kernel.UUID][]OrderItemResponse)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			price,
			image,
			quantity,
			size
		FROM order_items
		WHERE order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID   uuid.UUID
			productID uuid.UUID
			item      OrderItemResponse
		)

		err = rows.Scan(&orderID, &productID, &item.Name, &item.Price, &item.Image, &item.Quantity, &item.Size)
		if err != nil {
			return nil, err
		}

		oID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		item.ProductID = pID
		items[oID] = append(items[oID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// isReturnEligible mirrors the aggregate's return window rule: a delivered
// order may be returned while the delivery (or, lacking a delivery
// timestamp, the order date) is within the window.
func isReturnEligible(status order.Status, placedAt time.Time, deliveredAt *time.Time, now time.Time) bool {
	if status != order.Delivered {
		return false
	}

	reference := placedAt
	if deliveredAt != nil {
		reference = *deliveredAt
	}

	return reference.After(now.Add(-order.ReturnWindow))
}
