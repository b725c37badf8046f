package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/optica/backend/internal/domain/partner"
	"github.com/optica/backend/internal/domain/sales"
	"github.com/optica/backend/internal/domain/shared"
)

// CheckoutService registers sales. Each registration runs as one unit of
// work: stock decrements, the customer upsert and the ledger write commit
// together or not at all.
type CheckoutService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(scope TransactionScope, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		scope:  scope,
		logger: logger,
	}
}

// RegisterSale validates the cart, resolves the customer, decrements stock
// for every line under a row lock and writes the sale with its lines, all
// within a single transaction. Any failure rolls the whole sale back,
// including a customer created along the way.
func (s *CheckoutService) RegisterSale(ctx context.Context, cashierID uuid.UUID, req *RegisterSaleRequest) (*SaleResponse, error) {
	if len(req.Lines) == 0 {
		return nil, sales.ErrEmptyCart
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
	}

	sale, err := sales.NewSale(cashierID, sales.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, err
	}
	if req.Notes != "" {
		sale.SetNotes(req.Notes)
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := s.resolveCustomer(ctx, repos, req.Customer)
		if err != nil {
			return err
		}
		if customer != nil {
			sale.AttachCustomer(customer.ID, customer.DisplayName())
		}

		// Lines are processed in cart order so concurrent checkouts lock
		// products in a consistent sequence.
		for _, line := range req.Lines {
			product, err := repos.Products().FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return &sales.ProductNotFoundError{ProductID: line.ProductID}
				}
				return err
			}

			if err := product.Decrement(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return err
			}

			if err := sale.AddLine(product.ID, product.Name, product.Code, line.Quantity, product.UnitPrice); err != nil {
				return err
			}
		}

		if req.DiscountAmount > 0 {
			if err := sale.ApplyDiscount(decimal.NewFromFloat(req.DiscountAmount)); err != nil {
				return err
			}
		}

		if err := repos.Sales().Save(ctx, sale); err != nil {
			return &sales.SalePersistenceError{Err: err}
		}

		return nil
	})
	if err != nil {
		s.logger.Warn("sale registration failed",
			zap.String("cashier_id", cashierID.String()),
			zap.Int("lines", len(req.Lines)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("sale registered",
		zap.String("sale_id", sale.ID.String()),
		zap.String("cashier_id", cashierID.String()),
		zap.Int("lines", sale.LineCount()),
		zap.String("total", sale.TotalAmount.StringFixed(2)))

	return toSaleResponse(sale), nil
}

// resolveCustomer finds or creates the customer for the given identification.
// Returns nil when no usable tax ID was provided; the sale stays anonymous.
func (s *CheckoutService) resolveCustomer(ctx context.Context, repos TransactionalRepositories, info *CustomerInfo) (*partner.Customer, error) {
	if info == nil || !partner.HasUsableTaxID(info.TaxID) {
		return nil, nil
	}

	customer, err := partner.NewCustomer(info.TaxID, info.FirstName, info.LastName)
	if err != nil {
		return nil, err
	}
	if info.Phone != "" || info.Email != "" {
		if err := customer.SetContact(info.Phone, info.Email, ""); err != nil {
			return nil, err
		}
	}

	resolved, err := repos.Customers().GetOrCreate(ctx, customer)
	if err != nil {
		return nil, &sales.CustomerPersistenceError{Err: err}
	}

	return resolved, nil
}
