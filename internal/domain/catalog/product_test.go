package catalog

import (
	"errors"
	"testing"

	"github.com/optica/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int64) *Product {
	t.Helper()
	p, err := NewProduct("FRM-001", "Marco Ray-Ban RB5154", decimal.NewFromFloat(89990), stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("creates active product with uppercased code", func(t *testing.T) {
		p, err := NewProduct("frm-001", "Marco", decimal.NewFromInt(100), 5)
		require.NoError(t, err)
		assert.Equal(t, "FRM-001", p.Code)
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.Equal(t, int64(5), p.Stock)
		assert.Equal(t, 1, p.Version)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewProduct("", "Marco", decimal.NewFromInt(100), 5)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("FRM-001", "", decimal.NewFromInt(100), 5)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("FRM-001", "Marco", decimal.NewFromInt(-1), 5)
		assert.Error(t, err)
	})

	t.Run("rejects negative initial stock", func(t *testing.T) {
		_, err := NewProduct("FRM-001", "Marco", decimal.NewFromInt(100), -1)
		assert.Error(t, err)
	})
}

func TestProduct_Decrement(t *testing.T) {
	t.Run("reduces stock", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.Decrement(2))
		assert.Equal(t, int64(3), p.Stock)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.NoError(t, p.Decrement(2))
		assert.Equal(t, int64(0), p.Stock)
	})

	t.Run("fails when stock insufficient and leaves stock unchanged", func(t *testing.T) {
		p := newTestProduct(t, 1)
		err := p.Decrement(2)

		var stockErr *InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, p.ID, stockErr.ProductID)
		assert.Equal(t, int64(2), stockErr.Requested)
		assert.Equal(t, int64(1), stockErr.Available)
		assert.Equal(t, int64(1), p.Stock)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		p := newTestProduct(t, 5)
		err := p.Decrement(0)
		assert.Error(t, err)
		assert.Equal(t, int64(5), p.Stock)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		p := newTestProduct(t, 5)
		err := p.Decrement(-3)
		assert.Error(t, err)
		assert.Equal(t, int64(5), p.Stock)
	})

	t.Run("stock never goes negative across a sequence of decrements", func(t *testing.T) {
		p := newTestProduct(t, 4)
		quantities := []int64{1, 2, 3, 1, 1}
		for _, q := range quantities {
			_ = p.Decrement(q)
			assert.GreaterOrEqual(t, p.Stock, int64(0))
		}
	})
}

func TestProduct_Replenish(t *testing.T) {
	t.Run("increases stock", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.NoError(t, p.Replenish(10))
		assert.Equal(t, int64(12), p.Stock)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := newTestProduct(t, 2)
		assert.Error(t, p.Replenish(0))
		assert.Error(t, p.Replenish(-1))
	})
}

func TestProduct_Lifecycle(t *testing.T) {
	t.Run("deactivates active product", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.Deactivate())
		assert.False(t, p.IsActive())
	})

	t.Run("cannot deactivate twice", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.Deactivate())

		err := p.Deactivate()
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("reactivates inactive product", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.Deactivate())
		require.NoError(t, p.Activate())
		assert.True(t, p.IsActive())
	})
}

func TestProduct_SetUnitPrice(t *testing.T) {
	p := newTestProduct(t, 5)
	require.NoError(t, p.SetUnitPrice(decimal.NewFromInt(75000)))
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromInt(75000)))

	assert.Error(t, p.SetUnitPrice(decimal.NewFromInt(-1)))
}
