package sales

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSale(t *testing.T) *Sale {
	t.Helper()
	sale, err := NewSale(uuid.New(), PaymentMethodCash)
	require.NoError(t, err)
	return sale
}

func TestNewSale(t *testing.T) {
	t.Run("creates empty sale", func(t *testing.T) {
		sale := newTestSale(t)
		assert.Equal(t, 0, sale.LineCount())
		assert.True(t, sale.TotalAmount.IsZero())
		assert.Nil(t, sale.CustomerID)
	})

	t.Run("rejects nil cashier", func(t *testing.T) {
		_, err := NewSale(uuid.Nil, PaymentMethodCash)
		assert.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewSale(uuid.New(), PaymentMethod("barter"))
		assert.Error(t, err)
	})
}

func TestSale_AddLine(t *testing.T) {
	t.Run("computes subtotal as quantity times unit price", func(t *testing.T) {
		sale := newTestSale(t)
		require.NoError(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", 2, decimal.NewFromFloat(10.00)))

		require.Equal(t, 1, sale.LineCount())
		assert.Equal(t, "20.00", sale.Lines[0].Subtotal.StringFixed(2))
		assert.Equal(t, "20.00", sale.TotalAmount.StringFixed(2))
	})

	t.Run("accumulates totals across lines", func(t *testing.T) {
		sale := newTestSale(t)
		require.NoError(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", 1, decimal.NewFromFloat(10.00)))
		require.NoError(t, sale.AddLine(uuid.New(), "Estuche", "ACC-002", 3, decimal.NewFromFloat(5.00)))

		assert.Equal(t, "25.00", sale.GrossAmount.StringFixed(2))
		assert.Equal(t, "25.00", sale.TotalAmount.StringFixed(2))
		assert.Equal(t, int64(4), sale.TotalQuantity())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		sale := newTestSale(t)
		assert.Error(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", 0, decimal.NewFromInt(10)))
		assert.Error(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", -1, decimal.NewFromInt(10)))
	})

	t.Run("rejects nil product", func(t *testing.T) {
		sale := newTestSale(t)
		assert.Error(t, sale.AddLine(uuid.Nil, "Marco", "FRM-001", 1, decimal.NewFromInt(10)))
	})
}

func TestSale_ApplyDiscount(t *testing.T) {
	t.Run("subtracts discount from gross", func(t *testing.T) {
		sale := newTestSale(t)
		require.NoError(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", 2, decimal.NewFromFloat(10.00)))
		require.NoError(t, sale.ApplyDiscount(decimal.NewFromFloat(5.00)))

		assert.Equal(t, "15.00", sale.TotalAmount.StringFixed(2))
	})

	t.Run("clamps total at zero when discount exceeds gross", func(t *testing.T) {
		sale := newTestSale(t)
		require.NoError(t, sale.AddLine(uuid.New(), "Marco", "FRM-001", 1, decimal.NewFromFloat(10.00)))
		require.NoError(t, sale.AddLine(uuid.New(), "Estuche", "ACC-002", 3, decimal.NewFromFloat(5.00)))
		require.NoError(t, sale.ApplyDiscount(decimal.NewFromFloat(40.00)))

		assert.Equal(t, "25.00", sale.GrossAmount.StringFixed(2))
		assert.Equal(t, "0.00", sale.TotalAmount.StringFixed(2))
		// Requested discount stays on record for the receipt
		assert.Equal(t, "40.00", sale.DiscountAmount.StringFixed(2))
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		sale := newTestSale(t)
		assert.Error(t, sale.ApplyDiscount(decimal.NewFromInt(-1)))
	})
}

func TestSale_TotalConsistency(t *testing.T) {
	// total == sum(line subtotals) - discount, clamped at 0
	sale := newTestSale(t)
	require.NoError(t, sale.AddLine(uuid.New(), "A", "A-1", 2, decimal.NewFromFloat(7.50)))
	require.NoError(t, sale.AddLine(uuid.New(), "B", "B-1", 1, decimal.NewFromFloat(4.25)))
	require.NoError(t, sale.ApplyDiscount(decimal.NewFromFloat(3.00)))

	sum := decimal.Zero
	for _, line := range sale.Lines {
		sum = sum.Add(line.Subtotal)
	}
	expected := sum.Sub(sale.DiscountAmount)
	assert.True(t, sale.TotalAmount.Equal(expected))
}

func TestSale_AttachCustomer(t *testing.T) {
	sale := newTestSale(t)
	customerID := uuid.New()
	sale.AttachCustomer(customerID, "María Almonacid")

	require.NotNil(t, sale.CustomerID)
	assert.Equal(t, customerID, *sale.CustomerID)
	assert.Equal(t, "María Almonacid", sale.CustomerName)
}
