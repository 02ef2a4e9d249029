package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog products, optionally filtered to a
// category, the trending shelf, or items on sale.
type GetProductsQuery struct {
	category     string
	trendingOnly bool
	onSaleOnly   bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog listing query. An empty category
// means all categories.
func NewGetProductsQuery(category string, trendingOnly bool, onSaleOnly bool) GetProductsQuery {
	return GetProductsQuery{
		category:     strings.TrimSpace(category),
		trendingOnly: trendingOnly,
		onSaleOnly:   onSaleOnly,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the category filter, empty for all.
func (q GetProductsQuery) Category() string {
	return q.category
}

// TrendingOnly reports whether only trending products are requested.
func (q GetProductsQuery) TrendingOnly() bool {
	return q.trendingOnly
}

// OnSaleOnly reports whether only discounted products are requested.
func (q GetProductsQuery) OnSaleOnly() bool {
	return q.onSaleOnly
}
