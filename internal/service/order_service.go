package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"

	"github.com/google/uuid"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// OrderService defines the business logic for orders. Orders are created by
// the generator; the admin surface lists them and advances their status.
type OrderService interface {
	List(ctx context.Context, query listview.OrderQuery, page int) (listview.Page[domain.Order], error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	Update(ctx context.Context, order domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type orderService struct {
	orders repository.OrderRepository
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orders repository.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// List applies the query then paginates the filtered orders.
func (s *orderService) List(ctx context.Context, query listview.OrderQuery, page int) (listview.Page[domain.Order], error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return listview.Page[domain.Order]{}, fmt.Errorf("failed to list orders: %w", err)
	}
	return listview.Paginate(query.Apply(orders), page), nil
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// Create stores a new order. Monetary fields are stored as submitted, not
// recomputed from the line items.
func (s *orderService) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if !validOrderStatus(order.Status) {
		return nil, ErrInvalidOrderStatus
	}

	now := time.Now()
	order.ID = uuid.New().String()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.orders.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// Update replaces an order, keeping the stored creation and lifecycle
// timestamps.
func (s *orderService) Update(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if order.Status != "" && !validOrderStatus(order.Status) {
		return nil, ErrInvalidOrderStatus
	}

	existing, err := s.orders.FindByID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	if order.Status == "" {
		order.Status = existing.Status
	}
	order.CreatedAt = existing.CreatedAt
	order.ShippedAt = existing.ShippedAt
	order.DeliveredAt = existing.DeliveredAt
	order.UpdatedAt = time.Now()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return &order, nil
}

// Delete removes an order.
func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// UpdateStatus moves an order to a new status, stamping ShippedAt or
// DeliveredAt the first time those states are reached.
func (s *orderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	if !validOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order.Status = status
	order.UpdatedAt = now
	switch status {
	case domain.OrderStatusShipped:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
	case domain.OrderStatusDelivered:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
		if order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}

	if err := s.orders.Update(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func validOrderStatus(status string) bool {
	for _, s := range domain.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
