package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/optica/backend/internal/domain/shared"
)

// CustomerRepository defines the persistence interface for customers
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByTaxID finds a customer by its normalized tax identifier
	FindByTaxID(ctx context.Context, taxID string) (*Customer, error)

	// FindAll returns customers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// GetOrCreate inserts the customer unless one with the same tax ID already
	// exists, in which case the existing record is returned. A concurrent
	// insert racing on the tax ID unique constraint is resolved by re-fetching
	// the winner's row.
	GetOrCreate(ctx context.Context, customer *Customer) (*Customer, error)
}
