package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/optica/backend/internal/domain/catalog"
	"github.com/optica/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func TestProductService_CreateProduct(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, zap.NewNop())

	repo.On("ExistsByCode", mock.Anything, "FR-001").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	resp, err := service.CreateProduct(context.Background(), &CreateProductRequest{
		Code:      "fr-001",
		Name:      "Ray-Ban Aviator",
		Brand:     "Ray-Ban",
		UnitPrice: 89990,
		Stock:     12,
	})

	require.NoError(t, err)
	assert.Equal(t, "FR-001", resp.Code)
	assert.Equal(t, "89990.00", resp.UnitPrice)
	assert.Equal(t, int64(12), resp.Stock)
	assert.Equal(t, "active", resp.Status)
	repo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DuplicateCode(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, zap.NewNop())

	repo.On("ExistsByCode", mock.Anything, "FR-001").Return(true, nil)

	_, err := service.CreateProduct(context.Background(), &CreateProductRequest{
		Code:      "fr-001",
		Name:      "Ray-Ban Aviator",
		UnitPrice: 89990,
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "DUPLICATE_CODE", domainErr.Code)
	repo.AssertNotCalled(t, "Save")
}

func TestProductService_ReplenishStock(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, zap.NewNop())

	product, err := catalog.NewProduct("LE-002", "Blue light lens", decimal.NewFromInt(35000), 3)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(nil)

	resp, err := service.ReplenishStock(context.Background(), product.ID, &ReplenishStockRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Stock)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := service.GetProduct(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductService_UpdateProduct(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, zap.NewNop())

	product, err := catalog.NewProduct("FR-003", "Old name", decimal.NewFromInt(10000), 5)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	repo.On("Save", mock.Anything, product).Return(nil)

	resp, err := service.UpdateProduct(context.Background(), product.ID, &UpdateProductRequest{
		Name:      "New name",
		Brand:     "Vulk",
		UnitPrice: 12500,
	})

	require.NoError(t, err)
	assert.Equal(t, "New name", resp.Name)
	assert.Equal(t, "Vulk", resp.Brand)
	assert.Equal(t, "12500.00", resp.UnitPrice)
}
