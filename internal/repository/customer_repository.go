package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Replace(ctx context.Context, customers []domain.Customer) error
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Add(ctx context.Context, customer domain.Customer) error
	Update(ctx context.Context, customer domain.Customer) error
	Delete(ctx context.Context, id string) error
}

type customerRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(collections CollectionRepository, logger *zap.Logger) CustomerRepository {
	return &customerRepository{collections: collections, logger: logger}
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	raw, err := r.collections.Get(ctx, KeyCustomers)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.Customer{}, nil
		}
		return nil, err
	}

	var customers []domain.Customer
	if err := json.Unmarshal(raw, &customers); err != nil {
		r.logger.Warn("Failed to parse stored customers, falling back to empty",
			zap.Error(err))
		return []domain.Customer{}, nil
	}

	return customers, nil
}

func (r *customerRepository) Replace(ctx context.Context, customers []domain.Customer) error {
	raw, err := json.Marshal(customers)
	if err != nil {
		return fmt.Errorf("failed to encode customers: %w", err)
	}
	return r.collections.Put(ctx, KeyCustomers, raw)
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	customers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, ErrCustomerNotFound
}

func (r *customerRepository) Add(ctx context.Context, customer domain.Customer) error {
	customers, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.Replace(ctx, append(customers, customer))
}

func (r *customerRepository) Update(ctx context.Context, customer domain.Customer) error {
	customers, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	updated := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID == customer.ID {
			updated = append(updated, customer)
			found = true
		} else {
			updated = append(updated, c)
		}
	}

	if !found {
		return ErrCustomerNotFound
	}
	return r.Replace(ctx, updated)
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	customers, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != id {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) == len(customers) {
		return ErrCustomerNotFound
	}
	return r.Replace(ctx, filtered)
}
