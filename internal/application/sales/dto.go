package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/optica/backend/internal/domain/sales"
	"github.com/optica/backend/internal/domain/shared"
	"github.com/optica/backend/internal/domain/shared/valueobject"
)

// CartLine is one requested product in a checkout.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
}

// CustomerInfo carries the buyer identification captured at the counter.
// TaxID is optional; sales without one are recorded as walk-in sales.
type CustomerInfo struct {
	TaxID     string `json:"tax_id" binding:"omitempty,max=20"`
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// RegisterSaleRequest is the checkout payload.
type RegisterSaleRequest struct {
	Lines          []CartLine    `json:"lines" binding:"required"`
	Customer       *CustomerInfo `json:"customer" binding:"omitempty"`
	DiscountAmount float64       `json:"discount_amount" binding:"omitempty,gte=0"`
	PaymentMethod  string        `json:"payment_method" binding:"required"`
	Notes          string        `json:"notes" binding:"omitempty,max=500"`
}

// SaleLineResponse is one sold line as persisted, with the price snapshot
// taken at checkout time.
type SaleLineResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Subtotal    string    `json:"subtotal"`
}

// SaleResponse is the read model of a recorded sale.
type SaleResponse struct {
	ID             uuid.UUID          `json:"id"`
	CustomerID     *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName   string             `json:"customer_name,omitempty"`
	CashierID      uuid.UUID          `json:"cashier_id"`
	SoldAt         time.Time          `json:"sold_at"`
	Lines          []SaleLineResponse `json:"lines"`
	GrossAmount    string             `json:"gross_amount"`
	DiscountAmount string             `json:"discount_amount"`
	TotalAmount    string             `json:"total_amount"`
	Currency       string             `json:"currency"`
	PaymentMethod  string             `json:"payment_method"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SaleListResponse is a paginated sale listing.
type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

func toSaleResponse(s *sales.Sale) *SaleResponse {
	lines := make([]SaleLineResponse, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, SaleLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductCode: line.ProductCode,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   valueobject.NewMoneyCLP(line.UnitPrice).StringFixed(2),
			Subtotal:    valueobject.NewMoneyCLP(line.Subtotal).StringFixed(2),
		})
	}

	return &SaleResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		CustomerName:   s.CustomerName,
		CashierID:      s.CashierID,
		SoldAt:         s.SoldAt,
		Lines:          lines,
		GrossAmount:    valueobject.NewMoneyCLP(s.GrossAmount).StringFixed(2),
		DiscountAmount: valueobject.NewMoneyCLP(s.DiscountAmount).StringFixed(2),
		TotalAmount:    valueobject.NewMoneyCLP(s.TotalAmount).StringFixed(2),
		Currency:       string(valueobject.DefaultCurrency),
		PaymentMethod:  s.PaymentMethod.String(),
		Notes:          s.Notes,
		CreatedAt:      s.CreatedAt,
	}
}

func toSaleListResponse(page *shared.Paginated[*sales.Sale]) *SaleListResponse {
	items := make([]SaleResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, *toSaleResponse(s))
	}

	return &SaleListResponse{
		Sales:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
