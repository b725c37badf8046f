package handler

import (
	"github.com/gin-gonic/gin"

	salesapp "github.com/optica/backend/internal/application/sales"
)

// CheckoutHandler handles sale registration
type CheckoutHandler struct {
	BaseHandler
	checkoutService *salesapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *salesapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sales", h.RegisterSale)
}

// RegisterSale registers a sale from the cart in the request body. The whole
// registration is atomic; any failure leaves stock, customers and the ledger
// untouched.
func (h *CheckoutHandler) RegisterSale(c *gin.Context) {
	cashierID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Missing or invalid X-User-ID header")
		return
	}

	var req salesapp.RegisterSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.checkoutService.RegisterSale(c.Request.Context(), cashierID, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}
