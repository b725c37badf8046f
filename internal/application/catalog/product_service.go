package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/optica/backend/internal/domain/catalog"
	"github.com/optica/backend/internal/domain/shared"
)

// ProductService manages the product catalog and its stock levels outside
// the checkout path.
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// CreateProduct registers a new product. Codes are unique across the catalog.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByCode(ctx, strings.ToUpper(req.Code))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A product with this code already exists")
	}

	product, err := catalog.NewProduct(req.Code, req.Name, decimal.NewFromFloat(req.UnitPrice), req.Stock)
	if err != nil {
		return nil, err
	}
	if req.Description != "" || req.Brand != "" {
		if err := product.Update(req.Name, req.Description, req.Brand); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("code", product.Code))

	return toProductResponse(product), nil
}

// GetProduct returns one product
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// ListProducts returns products matching the filter
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter) (*ProductListResponse, error) {
	items, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*catalog.Product, 0, len(items))
	for i := range items {
		ptrs = append(ptrs, &items[i])
	}

	page := shared.NewPaginated(ptrs, total, filter.Page, filter.PageSize)
	return toProductListResponse(&page), nil
}

// UpdateProduct edits product master data and price
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Brand); err != nil {
		return nil, err
	}
	if err := product.SetUnitPrice(decimal.NewFromFloat(req.UnitPrice)); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return toProductResponse(product), nil
}

// ReplenishStock adds received units to a product
func (s *ProductService) ReplenishStock(ctx context.Context, id uuid.UUID, req *ReplenishStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Replenish(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("stock replenished",
		zap.String("product_id", product.ID.String()),
		zap.Int64("quantity", req.Quantity),
		zap.Int64("stock", product.Stock))

	return toProductResponse(product), nil
}

// DeactivateProduct takes a product off sale without deleting its history
func (s *ProductService) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := product.Deactivate(); err != nil {
		return err
	}

	return s.productRepo.Save(ctx, product)
}
