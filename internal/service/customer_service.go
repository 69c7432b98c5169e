package service

import (
	"context"
	"fmt"
	"time"

	"commerce-admin/internal/analytics"
	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"

	"github.com/google/uuid"
)

// CustomerService defines the business logic for customers.
type CustomerService interface {
	List(ctx context.Context, query listview.CustomerQuery, page int) (listview.Page[domain.Customer], error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	Segments(ctx context.Context) (CustomerSegments, error)
	Activity(ctx context.Context) ([]analytics.ActivityPoint, error)
}

// CustomerSegments bundles both segmentation views for the customers page.
type CustomerSegments struct {
	ByStatus []analytics.DataPoint `json:"byStatus"`
	BySpend  []analytics.DataPoint `json:"bySpend"`
}

type customerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

// List applies the query then paginates the filtered customers.
func (s *customerService) List(ctx context.Context, query listview.CustomerQuery, page int) (listview.Page[domain.Customer], error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return listview.Page[domain.Customer]{}, fmt.Errorf("failed to list customers: %w", err)
	}
	return listview.Paginate(query.Apply(customers), page), nil
}

func (s *customerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// Create assigns an id and creation time and appends the customer. New
// customers start active with no purchase history.
func (s *customerService) Create(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	customer.ID = uuid.New().String()
	customer.CreatedAt = time.Now()
	if customer.Status == "" {
		customer.Status = domain.CustomerStatusActive
	}

	if err := s.customers.Add(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// Update replaces the stored customer, preserving the creation time.
func (s *customerService) Update(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	existing, err := s.customers.FindByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	customer.CreatedAt = existing.CreatedAt

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return &customer, nil
}

func (s *customerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// Segments computes both segmentation charts.
func (s *customerService) Segments(ctx context.Context) (CustomerSegments, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return CustomerSegments{}, fmt.Errorf("failed to list customers: %w", err)
	}
	return CustomerSegments{
		ByStatus: analytics.SegmentsByStatus(customers),
		BySpend:  analytics.SegmentsBySpend(customers),
	}, nil
}

// Activity computes the trailing six month new/active series.
func (s *customerService) Activity(ctx context.Context) ([]analytics.ActivityPoint, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return analytics.UserActivity(customers, time.Now()), nil
}
