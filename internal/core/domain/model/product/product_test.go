package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
)

func int64Ptr(v int64) *int64 { return &v }

func testProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct(
		kernel.NewUUID(),
		"Classic Oxford Shirt",
		2499,
		int64Ptr(2999),
		[]string{"https://img.example.com/oxford-1.jpg", "https://img.example.com/oxford-2.jpg"},
		"Shirts",
		"A wardrobe staple in breathable cotton.",
		[]string{"S", "M", "L", "XL"},
		42,
		true,
	)
	require.NoError(t, err)
	return p
}

func Test_NewProduct(t *testing.T) {
	p := testProduct(t)

	assert.NoError(t, p.Validate())
	assert.Equal(t, "Classic Oxford Shirt", p.Name())
	assert.Equal(t, int64(2499), p.Price())
	assert.Equal(t, "Shirts", p.Category())
	assert.Equal(t, 42, p.Stock())
	assert.True(t, p.IsTrending())
	assert.True(t, p.InStock())
	assert.Equal(t, "https://img.example.com/oxford-1.jpg", p.PrimaryImage())
}

func Test_NewProduct_Validation(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]func() (*Product, error){
		"empty name": func() (*Product, error) {
			return NewProduct(id, "", 100, nil, nil, "Shirts", "", nil, 1, false)
		},
		"zero price": func() (*Product, error) {
			return NewProduct(id, "Tee", 0, nil, nil, "Shirts", "", nil, 1, false)
		},
		"original price below sale price": func() (*Product, error) {
			return NewProduct(id, "Tee", 100, int64Ptr(90), nil, "Shirts", "", nil, 1, false)
		},
		"empty category": func() (*Product, error) {
			return NewProduct(id, "Tee", 100, nil, nil, "", "", nil, 1, false)
		},
		"negative stock": func() (*Product, error) {
			return NewProduct(id, "Tee", 100, nil, nil, "Shirts", "", nil, -1, false)
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := create()
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func Test_Product_IsOnSale(t *testing.T) {
	onSale := testProduct(t)
	assert.True(t, onSale.IsOnSale())

	regular, err := NewProduct(kernel.NewUUID(), "Plain Tee", 999, nil, nil, "T-Shirts", "", nil, 5, false)
	require.NoError(t, err)
	assert.False(t, regular.IsOnSale())
	assert.Nil(t, regular.OriginalPrice())
}

func Test_Product_HasSize(t *testing.T) {
	p := testProduct(t)

	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("XXL"))
}

func Test_Product_NotConstructed(t *testing.T) {
	var p Product
	assert.ErrorIs(t, p.Validate(), ErrProductIsNotConstructed)
}
