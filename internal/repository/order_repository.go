package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Replace(ctx context.Context, orders []domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Add(ctx context.Context, order domain.Order) error
	Update(ctx context.Context, order domain.Order) error
	Delete(ctx context.Context, id string) error
}

type orderRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(collections CollectionRepository, logger *zap.Logger) OrderRepository {
	return &orderRepository{collections: collections, logger: logger}
}

func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	raw, err := r.collections.Get(ctx, KeyOrders)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.Order{}, nil
		}
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		r.logger.Warn("Failed to parse stored orders, falling back to empty",
			zap.Error(err))
		return []domain.Order{}, nil
	}

	return orders, nil
}

func (r *orderRepository) Replace(ctx context.Context, orders []domain.Order) error {
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	return r.collections.Put(ctx, KeyOrders, raw)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *orderRepository) Add(ctx context.Context, order domain.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.Replace(ctx, append(orders, order))
}

func (r *orderRepository) Update(ctx context.Context, order domain.Order) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	updated := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID == order.ID {
			updated = append(updated, order)
			found = true
		} else {
			updated = append(updated, o)
		}
	}

	if !found {
		return ErrOrderNotFound
	}
	return r.Replace(ctx, updated)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	orders, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			filtered = append(filtered, o)
		}
	}

	if len(filtered) == len(orders) {
		return ErrOrderNotFound
	}
	return r.Replace(ctx, filtered)
}
