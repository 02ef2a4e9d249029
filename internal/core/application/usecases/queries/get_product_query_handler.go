package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/pkg/errs"
)

// GetProductQueryHandler reads a single product from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for product detail queries.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the detail query. An unknown identifier yields an
// ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			original_price,
			images,
			category,
			description,
			sizes,
			stock,
			trending
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	resp, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}
	if err != nil {
		return ProductResponse{}, err
	}

	return resp, nil
}
