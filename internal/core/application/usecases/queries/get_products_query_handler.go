package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/core/domain/model/kernel"
)

// ProductResponse is a catalog entry shaped for listing and detail pages.
type ProductResponse struct {
	ID            kernel.UUID
	Name          string
	Price         int64
	OriginalPrice *int64
	Images        []string
	Category      string
	Description   string
	Sizes         []string
	Stock         int
	Trending      bool
}

// GetProductsQueryHandler reads the product catalog straight from the
// database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog listing queries.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the listing query with the requested filters.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1
	`
	args := make([]any, 0, 1)
	if query.Category() != "" {
		sql += " AND category = ?"
		args = append(args, query.Category())
	}
	if query.TrendingOnly() {
		sql += " AND trending"
	}
	if query.OnSaleOnly() {
		sql += " AND original_price IS NOT NULL"
	}
	sql += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		resp, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads one product row. Image and size lists are stored as
// JSON columns.
func scanProduct(row rowScanner) (ProductResponse, error) {
	var (
		id     uuid.UUID
		images []byte
		sizes  []byte
		resp   ProductResponse
	)

	err := row.Scan(
		&id, &resp.Name, &resp.Price, &resp.OriginalPrice,
		&images, &resp.Category, &resp.Description, &sizes,
		&resp.Stock, &resp.Trending,
	)
	if err != nil {
		return ProductResponse{}, err
	}

	productID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ProductResponse{}, err
	}
	resp.ID = productID

	if len(images) > 0 {
		if err = json.Unmarshal(images, &resp.Images); err != nil {
			return ProductResponse{}, err
		}
	}
	if len(sizes) > 0 {
		if err = json.Unmarshal(sizes, &resp.Sizes); err != nil {
			return ProductResponse{}, err
		}
	}

	return resp, nil
}
