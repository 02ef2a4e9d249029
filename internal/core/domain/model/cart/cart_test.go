package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

func testItem(t *testing.T, productID kernel.UUID, size string, quantity int) Item {
	t.Helper()
	item, err := NewItem(
		kernel.NewUUID(),
		productID,
		"Linen Shirt",
		1599,
		"https://img.example.com/linen.jpg",
		size,
		quantity,
	)
	require.NoError(t, err)
	return item
}

func Test_NewCart(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())

	require.NoError(t, err)
	assert.NoError(t, cart.Validate())
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Subtotal())
}

func Test_Cart_AddItem(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	item := testItem(t, kernel.NewUUID(), "M", 2)
	require.NoError(t, cart.AddItem(item))

	assert.Len(t, cart.Items(), 1)
	assert.Equal(t, int64(3198), cart.Subtotal())
}

func Test_Cart_AddItem_MergesSameProductAndSize(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	productID := kernel.NewUUID()
	require.NoError(t, cart.AddItem(testItem(t, productID, "M", 1)))
	require.NoError(t, cart.AddItem(testItem(t, productID, "M", 2)))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity())
}

func Test_Cart_AddItem_DifferentSizeIsSeparateLine(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	productID := kernel.NewUUID()
	require.NoError(t, cart.AddItem(testItem(t, productID, "M", 1)))
	require.NoError(t, cart.AddItem(testItem(t, productID, "L", 1)))

	assert.Len(t, cart.Items(), 2)
}

func Test_Cart_UpdateQuantity(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	item := testItem(t, kernel.NewUUID(), "M", 1)
	require.NoError(t, cart.AddItem(item))

	require.NoError(t, cart.UpdateQuantity(item.ID(), 5))
	assert.Equal(t, 5, cart.Items()[0].Quantity())
}

func Test_Cart_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	item := testItem(t, kernel.NewUUID(), "M", 2)
	require.NoError(t, cart.AddItem(item))

	require.NoError(t, cart.UpdateQuantity(item.ID(), 0))
	assert.True(t, cart.IsEmpty())
}

func Test_Cart_UpdateQuantity_NegativeRejected(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	item := testItem(t, kernel.NewUUID(), "M", 2)
	require.NoError(t, cart.AddItem(item))

	assert.ErrorIs(t, cart.UpdateQuantity(item.ID(), -1), errs.ErrValueIsInvalid)
	assert.Equal(t, 2, cart.Items()[0].Quantity())
}

func Test_Cart_UpdateQuantity_UnknownLine(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	assert.ErrorIs(t, cart.UpdateQuantity(kernel.NewUUID(), 1), errs.ErrObjectNotFound)
}

func Test_Cart_RemoveItem(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	first := testItem(t, kernel.NewUUID(), "M", 1)
	second := testItem(t, kernel.NewUUID(), "L", 1)
	require.NoError(t, cart.AddItem(first))
	require.NoError(t, cart.AddItem(second))

	require.NoError(t, cart.RemoveItem(first.ID()))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, second.ID(), items[0].ID())
}

func Test_Cart_RemoveItem_UnknownLine(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	assert.ErrorIs(t, cart.RemoveItem(kernel.NewUUID()), errs.ErrObjectNotFound)
}

func Test_Cart_Clear(t *testing.T) {
	cart, err := NewCart(kernel.NewUUID())
	require.NoError(t, err)

	require.NoError(t, cart.AddItem(testItem(t, kernel.NewUUID(), "M", 1)))
	cart.Clear()

	assert.True(t, cart.IsEmpty())
}

func Test_NewItem_Validation(t *testing.T) {
	id := kernel.NewUUID()
	productID := kernel.NewUUID()

	tests := map[string]func() (Item, error){
		"empty name": func() (Item, error) {
			return NewItem(id, productID, "", 100, "", "M", 1)
		},
		"zero price": func() (Item, error) {
			return NewItem(id, productID, "Linen Shirt", 0, "", "M", 1)
		},
		"zero quantity": func() (Item, error) {
			return NewItem(id, productID, "Linen Shirt", 100, "", "M", 0)
		},
		"quantity above limit": func() (Item, error) {
			return NewItem(id, productID, "Linen Shirt", 100, "", "M", 100)
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := create()
			assert.Error(t, err)
		})
	}
}
