package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/optica/backend/internal/domain/shared"
)

// SaleRepository defines the persistence interface for the sale ledger.
// Writes happen only through the checkout flow; the ledger is append-only.
type SaleRepository interface {
	// Save persists the sale header and all its lines together
	Save(ctx context.Context, sale *Sale) error

	// FindByID finds a sale by ID with its lines eagerly loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll returns sales matching the filter, newest first, with lines
	// eagerly loaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
