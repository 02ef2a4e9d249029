package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
)

func testCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer(kernel.NewUUID(), "priya@example.com", "correct horse battery", "Priya Nair", "+91 98765 43210")
	require.NoError(t, err)
	return c
}

func testAddress(t *testing.T, label string) Address {
	t.Helper()
	a, err := NewAddress(kernel.NewUUID(), label, "Priya Nair", "12 MG Road, Bengaluru 560001", "+91 98765 43210")
	require.NoError(t, err)
	return a
}

func Test_NewCustomer(t *testing.T) {
	c := testCustomer(t)

	assert.NoError(t, c.Validate())
	assert.Equal(t, "priya@example.com", c.Email())
	assert.Equal(t, "Priya Nair", c.Name())
	assert.Empty(t, c.Addresses())
	assert.NotContains(t, string(c.PasswordHash()), "correct horse battery")
}

func Test_NewCustomer_Validation(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]func() (*Customer, error){
		"empty email": func() (*Customer, error) {
			return NewCustomer(id, "", "longenoughpassword", "Priya Nair", "")
		},
		"malformed email": func() (*Customer, error) {
			return NewCustomer(id, "not-an-email", "longenoughpassword", "Priya Nair", "")
		},
		"short password": func() (*Customer, error) {
			return NewCustomer(id, "priya@example.com", "short", "Priya Nair", "")
		},
		"empty name": func() (*Customer, error) {
			return NewCustomer(id, "priya@example.com", "longenoughpassword", "", "")
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := create()
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func Test_Customer_VerifyPassword(t *testing.T) {
	c := testCustomer(t)

	assert.True(t, c.VerifyPassword("correct horse battery"))
	assert.False(t, c.VerifyPassword("wrong password"))
}

func Test_Customer_AddAddress_FirstBecomesDefault(t *testing.T) {
	c := testCustomer(t)

	require.NoError(t, c.AddAddress(testAddress(t, "Home"), false))

	def, ok := c.DefaultAddress()
	require.True(t, ok)
	assert.Equal(t, "Home", def.Label())
}

func Test_Customer_AddAddress_NewDefaultDemotesPrevious(t *testing.T) {
	c := testCustomer(t)

	require.NoError(t, c.AddAddress(testAddress(t, "Home"), false))
	require.NoError(t, c.AddAddress(testAddress(t, "Office"), true))

	def, ok := c.DefaultAddress()
	require.True(t, ok)
	assert.Equal(t, "Office", def.Label())

	defaults := 0
	for _, a := range c.Addresses() {
		if a.IsDefault() {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func Test_Customer_AddAddress_NonDefaultKeepsExistingDefault(t *testing.T) {
	c := testCustomer(t)

	require.NoError(t, c.AddAddress(testAddress(t, "Home"), false))
	require.NoError(t, c.AddAddress(testAddress(t, "Office"), false))

	def, ok := c.DefaultAddress()
	require.True(t, ok)
	assert.Equal(t, "Home", def.Label())
}

func Test_RestoreCustomer(t *testing.T) {
	original := testCustomer(t)
	require.NoError(t, original.AddAddress(testAddress(t, "Home"), false))

	restored, err := RestoreCustomer(
		original.ID(),
		original.Email(),
		original.PasswordHash(),
		original.Name(),
		original.Phone(),
		original.Addresses(),
	)

	require.NoError(t, err)
	assert.True(t, restored.VerifyPassword("correct horse battery"))
	assert.Len(t, restored.Addresses(), 1)
}

func Test_NewAddress_Validation(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]func() (Address, error){
		"empty label": func() (Address, error) {
			return NewAddress(id, "", "Priya Nair", "12 MG Road", "+91 98765 43210")
		},
		"empty recipient": func() (Address, error) {
			return NewAddress(id, "Home", "", "12 MG Road", "+91 98765 43210")
		},
		"empty line": func() (Address, error) {
			return NewAddress(id, "Home", "Priya Nair", "", "+91 98765 43210")
		},
		"empty phone": func() (Address, error) {
			return NewAddress(id, "Home", "Priya Nair", "12 MG Road", "")
		},
	}

	for name, create := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := create()
			assert.Error(t, err)
		})
	}
}
