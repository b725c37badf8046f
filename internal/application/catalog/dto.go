package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/optica/backend/internal/domain/catalog"
	"github.com/optica/backend/internal/domain/shared"
)

// CreateProductRequest is the payload for registering a catalog product.
type CreateProductRequest struct {
	Code        string  `json:"code" binding:"required,max=50"`
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Brand       string  `json:"brand" binding:"omitempty,max=100"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	Stock       int64   `json:"stock" binding:"omitempty,gte=0"`
}

// UpdateProductRequest is the payload for editing product master data.
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Brand       string  `json:"brand" binding:"omitempty,max=100"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// ReplenishStockRequest adds received units to a product's stock.
type ReplenishStockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// ProductResponse is the read model of a product.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	UnitPrice   string    `json:"unit_price"`
	Stock       int64     `json:"stock"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		UnitPrice:   p.UnitPrice.StringFixed(2),
		Stock:       p.Stock,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductListResponse(page *shared.Paginated[*catalog.Product]) *ProductListResponse {
	items := make([]ProductResponse, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, *toProductResponse(p))
	}

	return &ProductListResponse{
		Products:   items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
