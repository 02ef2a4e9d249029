// Package product provides the catalog side of the storefront domain:
// the Product aggregate and customer Reviews attached to it.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a catalog entry. Orders snapshot its name, price and image at
// checkout, so catalog edits never rewrite order history.
//
// Product follows these invariants:
//   - Must have a valid unique identifier, a name, and a positive price
//   - The original price, when present, must exceed the sale price
//   - Stock is never negative
type Product struct {
	id            kernel.UUID
	name          string
	price         int64
	originalPrice *int64
	images        []string
	category      string
	description   string
	sizes         []string
	stock         int
	trending      bool

	isConstructed bool
}

// NewProduct creates a catalog entry. Price is in whole currency units.
// originalPrice is optional; when set it marks the product as on sale and
// must be greater than price.
func NewProduct(
	id kernel.UUID,
	name string,
	price int64,
	originalPrice *int64,
	images []string,
	category string,
	description string,
	sizes []string,
	stock int,
	trending bool,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}
	if originalPrice != nil && *originalPrice <= price {
		return nil, errs.NewValueIsInvalidErrorWithCause("originalPrice",
			fmt.Errorf("%d is not greater than the sale price %d", *originalPrice, price))
	}
	if category == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}
	if stock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		originalPrice: originalPrice,
		images:        append([]string(nil), images...),
		category:      category,
		description:   description,
		sizes:         append([]string(nil), sizes...),
		stock:         stock,
		trending:      trending,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a product from persistence.
// It applies the same invariants as NewProduct.
func RestoreProduct(
	id kernel.UUID,
	name string,
	price int64,
	originalPrice *int64,
	images []string,
	category string,
	description string,
	sizes []string,
	stock int,
	trending bool,
) (*Product, error) {
	return NewProduct(id, name, price, originalPrice, images, category, description, sizes, stock, trending)
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the current price in whole currency units.
func (p *Product) Price() int64 {
	return p.price
}

// OriginalPrice returns the pre-sale price, or nil when the product is not
// on sale.
func (p *Product) OriginalPrice() *int64 {
	return p.originalPrice
}

// Images returns a copy of the product image URLs.
func (p *Product) Images() []string {
	return append([]string(nil), p.images...)
}

// PrimaryImage returns the first image URL, or an empty string when the
// product has no images. Carts and orders snapshot this value.
func (p *Product) PrimaryImage() string {
	if len(p.images) == 0 {
		return ""
	}
	return p.images[0]
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// Description returns the long-form description.
func (p *Product) Description() string {
	return p.description
}

// Sizes returns a copy of the available size variants.
func (p *Product) Sizes() []string {
	return append([]string(nil), p.sizes...)
}

// Stock returns the units available.
func (p *Product) Stock() int {
	return p.stock
}

// IsTrending reports whether the product is featured on the trending shelf.
func (p *Product) IsTrending() bool {
	return p.trending
}

// IsOnSale reports whether the product carries a discounted price.
func (p *Product) IsOnSale() bool {
	return p.originalPrice != nil
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.stock > 0
}

// HasSize reports whether the given size variant exists for this product.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.sizes {
		if s == size {
			return true
		}
	}
	return false
}
