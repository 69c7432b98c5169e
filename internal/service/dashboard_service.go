package service

import (
	"context"
	"fmt"
	"time"

	"commerce-admin/internal/analytics"
	"commerce-admin/internal/repository"
)

// DashboardService assembles the landing page: summary cards plus the
// charts that draw on more than one collection.
type DashboardService interface {
	Overview(ctx context.Context) (analytics.Overview, error)
	TopProducts(ctx context.Context) ([]analytics.DataPoint, error)
	OrderStatusDistribution(ctx context.Context) ([]analytics.StatusCount, error)
	GeographicSales(ctx context.Context) ([]analytics.RegionSales, error)
}

type dashboardService struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
) DashboardService {
	return &dashboardService{orders: orders, products: products, customers: customers}
}

// Overview computes the summary cards across orders, products and
// customers.
func (s *dashboardService) Overview(ctx context.Context) (analytics.Overview, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("failed to list orders: %w", err)
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("failed to list products: %w", err)
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return analytics.Overview{}, fmt.Errorf("failed to list customers: %w", err)
	}
	return analytics.DashboardOverview(orders, products, customers, time.Now()), nil
}

// TopProducts resolves line-item totals against the product catalog.
func (s *dashboardService) TopProducts(ctx context.Context) ([]analytics.DataPoint, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return analytics.TopProducts(orders, products), nil
}

func (s *dashboardService) OrderStatusDistribution(ctx context.Context) ([]analytics.StatusCount, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return analytics.OrderStatusDistribution(orders), nil
}

func (s *dashboardService) GeographicSales(ctx context.Context) ([]analytics.RegionSales, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return analytics.GeographicSales(orders), nil
}
