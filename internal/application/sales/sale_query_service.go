package sales

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/optica/backend/internal/domain/sales"
	"github.com/optica/backend/internal/domain/shared"
)

// SaleQueryService serves the read side of the sale ledger.
type SaleQueryService struct {
	saleRepo sales.SaleRepository
	logger   *zap.Logger
}

// NewSaleQueryService creates a new sale query service
func NewSaleQueryService(saleRepo sales.SaleRepository, logger *zap.Logger) *SaleQueryService {
	return &SaleQueryService{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// GetSale returns one sale with its lines
func (s *SaleQueryService) GetSale(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale), nil
}

// ListSales returns sales matching the filter, newest first
func (s *SaleQueryService) ListSales(ctx context.Context, filter shared.Filter) (*SaleListResponse, error) {
	items, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*sales.Sale, 0, len(items))
	for i := range items {
		ptrs = append(ptrs, &items[i])
	}

	page := shared.NewPaginated(ptrs, total, filter.Page, filter.PageSize)
	return toSaleListResponse(&page), nil
}
