package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/optica/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodTransfer   PaymentMethod = "transfer"
)

// IsValid checks if the payment method is known
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodDebitCard, PaymentMethodCreditCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// SaleLine represents a line item in a sale. The unit price is a snapshot taken
// at decrement time, not resolved against the catalog later.
type SaleLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	ProductCode string          `gorm:"type:varchar(50);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time
}

// TableName returns the table name for GORM
func (SaleLine) TableName() string {
	return "sale_lines"
}

// Sale represents a completed checkout: the append-only ledger header owning
// its line items. Immutable after creation.
type Sale struct {
	shared.BaseAggregateRoot
	CustomerID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName   string     `gorm:"type:varchar(200)"`
	CashierID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SoldAt         time.Time  `gorm:"not null;index"`
	Lines          []SaleLine `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	GrossAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Sum of line subtotals
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"` // As requested by the cashier
	TotalAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Gross - discount, clamped at 0
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null"`
	Notes          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale header for the given cashier
func NewSale(cashierID uuid.UUID, paymentMethod PaymentMethod) (*Sale, error) {
	if cashierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CASHIER", "Cashier ID cannot be empty")
	}
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CashierID:         cashierID,
		SoldAt:            time.Now(),
		Lines:             make([]SaleLine, 0),
		GrossAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		TotalAmount:       decimal.Zero,
		PaymentMethod:     paymentMethod,
	}, nil
}

// AttachCustomer links the sale to a resolved customer. Sales without
// identifying data stay anonymous.
func (s *Sale) AttachCustomer(customerID uuid.UUID, customerName string) {
	s.CustomerID = &customerID
	s.CustomerName = customerName
}

// SetNotes sets free-text notes on the sale
func (s *Sale) SetNotes(notes string) {
	s.Notes = notes
}

// AddLine appends a line item with the snapshotted unit price and recalculates
// totals. Subtotal is always quantity x unit price.
func (s *Sale) AddLine(productID uuid.UUID, productName, productCode string, quantity int64, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	line := SaleLine{
		ID:          uuid.New(),
		SaleID:      s.ID,
		ProductID:   productID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    unitPrice.Mul(decimal.NewFromInt(quantity)),
		CreatedAt:   time.Now(),
	}

	s.Lines = append(s.Lines, line)
	s.recalculateTotals()

	return nil
}

// ApplyDiscount sets the discount and recalculates the total. A discount
// exceeding the gross amount clamps the total at 0 rather than going negative;
// the requested discount stays on record for the receipt.
func (s *Sale) ApplyDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	s.DiscountAmount = discount
	s.recalculateTotals()

	return nil
}

// LineCount returns the number of line items
func (s *Sale) LineCount() int {
	return len(s.Lines)
}

// TotalQuantity returns the sum of all line quantities
func (s *Sale) TotalQuantity() int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

func (s *Sale) recalculateTotals() {
	gross := decimal.Zero
	for _, line := range s.Lines {
		gross = gross.Add(line.Subtotal)
	}
	s.GrossAmount = gross
	s.TotalAmount = gross.Sub(s.DiscountAmount)

	if s.TotalAmount.IsNegative() {
		s.TotalAmount = decimal.Zero
	}
}
