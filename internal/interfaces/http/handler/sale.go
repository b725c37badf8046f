package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	salesapp "github.com/optica/backend/internal/application/sales"
	"github.com/optica/backend/internal/interfaces/http/dto"
)

// SaleHandler serves the sale ledger read side
type SaleHandler struct {
	BaseHandler
	queryService *salesapp.SaleQueryService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(queryService *salesapp.SaleQueryService) *SaleHandler {
	return &SaleHandler{queryService: queryService}
}

// RegisterRoutes registers sale ledger routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sales", h.List)
	rg.GET("/sales/:id", h.GetByID)
}

// GetByID returns one sale with its lines
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	resp, err := h.queryService.GetSale(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns sales newest first, with optional filters
func (h *SaleHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	filter := toFilter(req)
	if customerID := c.Query("customer_id"); customerID != "" {
		filter.Filters["customer_id"] = customerID
	}
	if paymentMethod := c.Query("payment_method"); paymentMethod != "" {
		filter.Filters["payment_method"] = paymentMethod
	}

	resp, err := h.queryService.ListSales(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, resp.Sales, resp.Total, resp.Page, resp.PageSize)
}
