package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// GetCartQueryHandler reads the customer's cart from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. A customer without stored lines gets an
// empty cart, not an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			name,
			price,
			image,
			size,
			quantity
		FROM cart_items
		WHERE customer_id = ?
		ORDER BY name
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	resp := CartResponse{Items: make([]CartItemResponse, 0)}
	for rows.Next() {
		var (
			id        uuid.UUID
			productID uuid.UUID
			item      CartItemResponse
		)

		err = rows.Scan(&id, &productID, &item.Name, &item.Price, &item.Image, &item.Size, &item.Quantity)
		if err != nil {
			return CartResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return CartResponse{}, idErr
		}
		itemProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return CartResponse{}, idErr
		}

		item.ID = itemID
		item.ProductID = itemProductID
		resp.Items = append(resp.Items, item)
		resp.Subtotal += item.Price * int64(item.Quantity)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return resp, nil
}
