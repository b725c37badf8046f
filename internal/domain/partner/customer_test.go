package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates active customer with normalized tax id", func(t *testing.T) {
		c, err := NewCustomer("12.345.678-k", "María", "Almonacid")
		require.NoError(t, err)
		assert.Equal(t, "12345678-K", c.TaxID)
		assert.Equal(t, CustomerStatusActive, c.Status)
		assert.Equal(t, "María Almonacid", c.DisplayName())
	})

	t.Run("rejects empty tax id", func(t *testing.T) {
		_, err := NewCustomer("  ", "María", "Almonacid")
		assert.Error(t, err)
	})

	t.Run("rejects empty first name", func(t *testing.T) {
		_, err := NewCustomer("12345678-9", "", "Almonacid")
		assert.Error(t, err)
	})

	t.Run("allows missing last name", func(t *testing.T) {
		c, err := NewCustomer("12345678-9", "María", "")
		require.NoError(t, err)
		assert.Equal(t, "María", c.DisplayName())
	})
}

func TestCustomer_SetContact(t *testing.T) {
	c, err := NewCustomer("12345678-9", "María", "Almonacid")
	require.NoError(t, err)

	t.Run("sets valid contact data", func(t *testing.T) {
		require.NoError(t, c.SetContact("+56 9 1234 5678", "maria@example.cl", "Av. Principal 123"))
		assert.Equal(t, "maria@example.cl", c.Email)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		assert.Error(t, c.SetContact("", "not-an-email", ""))
	})
}

func TestCustomer_Deactivate(t *testing.T) {
	c, err := NewCustomer("12345678-9", "María", "Almonacid")
	require.NoError(t, err)

	require.NoError(t, c.Deactivate())
	assert.Equal(t, CustomerStatusInactive, c.Status)
	assert.Error(t, c.Deactivate())
}

func TestNormalizeTaxID(t *testing.T) {
	assert.Equal(t, "12345678-K", NormalizeTaxID(" 12.345.678-k "))
	assert.Equal(t, "", NormalizeTaxID("   "))
	assert.True(t, HasUsableTaxID("9.876.543-2"))
	assert.False(t, HasUsableTaxID(""))
}
