package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appsales "github.com/optica/backend/internal/application/sales"
	"github.com/optica/backend/internal/domain/catalog"
	"github.com/optica/backend/internal/domain/partner"
	"github.com/optica/backend/internal/domain/sales"
	"github.com/optica/backend/internal/domain/shared"
)

func setupCheckoutTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Product{}, &partner.Customer{}, &sales.Sale{}, &sales.SaleLine{})
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, code string, price string, stock int64) *catalog.Product {
	t.Helper()

	product, err := catalog.NewProduct(code, "Product "+code, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestGormTransactionScope_CommitsOnSuccess(t *testing.T) {
	db := setupCheckoutTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	product := seedProduct(t, db, "FR-001", "45000", 10)

	err := scope.Execute(ctx, func(repos appsales.TransactionalRepositories) error {
		p, err := repos.Products().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := p.Decrement(3); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, p); err != nil {
			return err
		}

		customer, err := partner.NewCustomer("12345678-K", "María", "Almonacid")
		if err != nil {
			return err
		}
		resolved, err := repos.Customers().GetOrCreate(ctx, customer)
		if err != nil {
			return err
		}

		sale, err := sales.NewSale(uuid.New(), sales.PaymentMethodCash)
		if err != nil {
			return err
		}
		sale.AttachCustomer(resolved.ID, resolved.DisplayName())
		if err := sale.AddLine(p.ID, p.Name, p.Code, 3, p.UnitPrice); err != nil {
			return err
		}
		return repos.Sales().Save(ctx, sale)
	})
	require.NoError(t, err)

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, int64(7), reloaded.Stock)

	var saleCount, lineCount, customerCount int64
	db.Model(&sales.Sale{}).Count(&saleCount)
	db.Model(&sales.SaleLine{}).Count(&lineCount)
	db.Model(&partner.Customer{}).Count(&customerCount)
	assert.Equal(t, int64(1), saleCount)
	assert.Equal(t, int64(1), lineCount)
	assert.Equal(t, int64(1), customerCount)
}

func TestGormTransactionScope_RollsBackEverythingOnFailure(t *testing.T) {
	db := setupCheckoutTestDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	product := seedProduct(t, db, "FR-002", "30000", 5)
	boom := errors.New("second line failed")

	err := scope.Execute(ctx, func(repos appsales.TransactionalRepositories) error {
		// Customer created mid-flight must vanish with the rollback
		customer, err := partner.NewCustomer("9876543-2", "Pedro", "Soto")
		if err != nil {
			return err
		}
		if _, err := repos.Customers().GetOrCreate(ctx, customer); err != nil {
			return err
		}

		p, err := repos.Products().FindByID(ctx, product.ID)
		if err != nil {
			return err
		}
		if err := p.Decrement(2); err != nil {
			return err
		}
		if err := repos.Products().Save(ctx, p); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	var reloaded catalog.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, int64(5), reloaded.Stock, "decrement must not survive the rollback")

	var saleCount, customerCount int64
	db.Model(&sales.Sale{}).Count(&saleCount)
	db.Model(&partner.Customer{}).Count(&customerCount)
	assert.Equal(t, int64(0), saleCount)
	assert.Equal(t, int64(0), customerCount, "customer insert must roll back with the sale")
}

func TestGormSaleRepository_SaveAndFindByID(t *testing.T) {
	db := setupCheckoutTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "FR-003", "12000", 3)

	sale, err := sales.NewSale(uuid.New(), sales.PaymentMethodDebitCard)
	require.NoError(t, err)
	require.NoError(t, sale.AddLine(product.ID, product.Name, product.Code, 2, product.UnitPrice))
	require.NoError(t, sale.ApplyDiscount(decimal.NewFromInt(4000)))

	require.NoError(t, repo.Save(ctx, sale))

	found, err := repo.FindByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, int64(2), found.Lines[0].Quantity)
	assert.True(t, found.GrossAmount.Equal(decimal.NewFromInt(24000)))
	assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(20000)))
}

func TestGormSaleRepository_FindAllNewestFirst(t *testing.T) {
	db := setupCheckoutTestDB(t)
	repo := NewGormSaleRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, "FR-004", "10000", 10)

	var ids []string
	for i := 0; i < 3; i++ {
		sale, err := sales.NewSale(uuid.New(), sales.PaymentMethodCash)
		require.NoError(t, err)
		require.NoError(t, sale.AddLine(product.ID, product.Name, product.Code, 1, product.UnitPrice))
		sale.SoldAt = sale.SoldAt.Add(-time.Duration(i) * time.Hour)
		require.NoError(t, repo.Save(ctx, sale))
		ids = append(ids, sale.ID.String())
	}

	found, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, found, 3)
	// Seeded with decreasing SoldAt, so insertion order is already newest first
	assert.Equal(t, ids[0], found[0].ID.String())
	assert.Equal(t, ids[2], found[2].ID.String())
}
