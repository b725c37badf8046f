package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/optica/backend/internal/domain/partner"
	"github.com/optica/backend/internal/domain/shared"
)

// CustomerService manages the customer directory outside the checkout path.
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateCustomer registers a customer. Tax IDs are unique across the
// directory; registering a known tax ID returns the existing record.
func (s *CustomerService) CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.TaxID, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" || req.Email != "" || req.Address != "" {
		if err := customer.SetContact(req.Phone, req.Email, req.Address); err != nil {
			return nil, err
		}
	}

	resolved, err := s.customerRepo.GetOrCreate(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("customer registered",
		zap.String("customer_id", resolved.ID.String()),
		zap.String("tax_id", resolved.TaxID))

	return toCustomerResponse(resolved), nil
}

// GetCustomer returns one customer
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}

// GetCustomerByTaxID returns the customer holding the given tax ID
func (s *CustomerService) GetCustomerByTaxID(ctx context.Context, taxID string) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByTaxID(ctx, partner.NormalizeTaxID(taxID))
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}

// ListCustomers returns customers matching the filter
func (s *CustomerService) ListCustomers(ctx context.Context, filter shared.Filter) (*CustomerListResponse, error) {
	items, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	ptrs := make([]*partner.Customer, 0, len(items))
	for i := range items {
		ptrs = append(ptrs, &items[i])
	}

	page := shared.NewPaginated(ptrs, total, filter.Page, filter.PageSize)
	return toCustomerListResponse(&page), nil
}

// UpdateCustomer edits customer master data
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, req *UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.FirstName, req.LastName); err != nil {
		return nil, err
	}
	if err := customer.SetContact(req.Phone, req.Email, req.Address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return toCustomerResponse(customer), nil
}

// DeactivateCustomer retires a customer without deleting purchase history
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := customer.Deactivate(); err != nil {
		return err
	}

	return s.customerRepo.Save(ctx, customer)
}
