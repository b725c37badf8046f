package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/optica/backend/internal/domain/shared"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Customer represents a purchaser in the directory. Customers are looked up by
// their tax identifier (RUT); the identifier is required when a record is
// created, but legacy data means it is not guaranteed globally unique, so
// lookups return the first match.
type Customer struct {
	shared.BaseAggregateRoot
	TaxID     string         `gorm:"type:varchar(20);not null;uniqueIndex"`
	FirstName string         `gorm:"type:varchar(100);not null"`
	LastName  string         `gorm:"type:varchar(100)"`
	Phone     string         `gorm:"type:varchar(50)"`
	Email     string         `gorm:"type:varchar(200);index"`
	Address   string         `gorm:"type:text"`
	Status    CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer with required fields
func NewCustomer(taxID, firstName, lastName string) (*Customer, error) {
	if err := validateTaxID(taxID); err != nil {
		return nil, err
	}
	if err := validateNamePart(firstName, "First name"); err != nil {
		return nil, err
	}
	if firstName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if lastName != "" {
		if err := validateNamePart(lastName, "Last name"); err != nil {
			return nil, err
		}
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TaxID:             NormalizeTaxID(taxID),
		FirstName:         firstName,
		LastName:          lastName,
		Status:            CustomerStatusActive,
	}, nil
}

// Update updates the customer's name parts
func (c *Customer) Update(firstName, lastName string) error {
	if firstName == "" {
		return shared.NewDomainError("INVALID_NAME", "First name cannot be empty")
	}
	if err := validateNamePart(firstName, "First name"); err != nil {
		return err
	}
	if lastName != "" {
		if err := validateNamePart(lastName, "Last name"); err != nil {
			return err
		}
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(phone, email, address string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if email != "" {
		if len(email) > 200 || !emailRegex.MatchString(email) {
			return shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
		}
	}

	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("INVALID_STATE", "Customer is already inactive")
	}

	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// DisplayName returns the full name for receipts and history views
func (c *Customer) DisplayName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// NormalizeTaxID canonicalizes a RUT: uppercase, no dots, single hyphen kept
func NormalizeTaxID(taxID string) string {
	s := strings.ToUpper(strings.TrimSpace(taxID))
	return strings.ReplaceAll(s, ".", "")
}

// HasUsableTaxID reports whether the raw identifier is sufficient to create or
// look up a customer record
func HasUsableTaxID(taxID string) bool {
	return NormalizeTaxID(taxID) != ""
}

func validateTaxID(taxID string) error {
	if NormalizeTaxID(taxID) == "" {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot be empty")
	}
	if len(taxID) > 20 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID cannot exceed 20 characters")
	}
	return nil
}

func validateNamePart(name, label string) error {
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", label+" cannot exceed 100 characters")
	}
	return nil
}
