package service

import (
	"context"
	"fmt"
	"time"

	"commerce-admin/internal/mockdata"
	"commerce-admin/internal/repository"

	"go.uber.org/zap"
)

// SeedService fills empty collection slots with generated data on startup.
// Collections that already hold data are left untouched, so reseeding never
// clobbers edits made through the API.
type SeedService interface {
	EnsureSeeded(ctx context.Context) error
	Reset(ctx context.Context) error
}

type seedService struct {
	products     repository.ProductRepository
	customers    repository.CustomerRepository
	orders       repository.OrderRepository
	transactions repository.TransactionRepository
	campaigns    repository.CampaignRepository
	content      repository.ContentRepository
	seed         int64
	logger       *zap.Logger
}

// NewSeedService creates a new instance of SeedService
func NewSeedService(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	transactions repository.TransactionRepository,
	campaigns repository.CampaignRepository,
	content repository.ContentRepository,
	seed int64,
	logger *zap.Logger,
) SeedService {
	return &seedService{
		products:     products,
		customers:    customers,
		orders:       orders,
		transactions: transactions,
		campaigns:    campaigns,
		content:      content,
		seed:         seed,
		logger:       logger,
	}
}

// EnsureSeeded generates one dataset and writes each collection only if its
// slot is currently empty.
func (s *seedService) EnsureSeeded(ctx context.Context) error {
	dataset := mockdata.New(s.seed, time.Now()).GenerateAll()

	if err := s.seedCollections(ctx, dataset, false); err != nil {
		return err
	}
	return nil
}

// Reset regenerates every collection unconditionally.
func (s *seedService) Reset(ctx context.Context) error {
	dataset := mockdata.New(s.seed, time.Now()).GenerateAll()
	return s.seedCollections(ctx, dataset, true)
}

func (s *seedService) seedCollections(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if err := s.seedProducts(ctx, dataset, force); err != nil {
		return err
	}
	if err := s.seedCustomers(ctx, dataset, force); err != nil {
		return err
	}
	if err := s.seedOrders(ctx, dataset, force); err != nil {
		return err
	}
	if err := s.seedTransactions(ctx, dataset, force); err != nil {
		return err
	}
	if err := s.seedCampaigns(ctx, dataset, force); err != nil {
		return err
	}
	return s.seedContent(ctx, dataset, force)
}

func (s *seedService) seedProducts(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.products.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check products: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding products", zap.Int("count", len(dataset.Products)))
	return s.products.Replace(ctx, dataset.Products)
}

func (s *seedService) seedCustomers(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.customers.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check customers: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding customers", zap.Int("count", len(dataset.Customers)))
	return s.customers.Replace(ctx, dataset.Customers)
}

func (s *seedService) seedOrders(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.orders.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check orders: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding orders", zap.Int("count", len(dataset.Orders)))
	return s.orders.Replace(ctx, dataset.Orders)
}

func (s *seedService) seedTransactions(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.transactions.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check transactions: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding transactions", zap.Int("count", len(dataset.Transactions)))
	return s.transactions.Replace(ctx, dataset.Transactions)
}

func (s *seedService) seedCampaigns(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.campaigns.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check campaigns: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding campaigns", zap.Int("count", len(dataset.Campaigns)))
	return s.campaigns.Replace(ctx, dataset.Campaigns)
}

func (s *seedService) seedContent(ctx context.Context, dataset mockdata.Dataset, force bool) error {
	if !force {
		existing, err := s.content.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to check content: %w", err)
		}
		if len(existing) > 0 {
			return nil
		}
	}
	s.logger.Info("Seeding content", zap.Int("count", len(dataset.Content)))
	return s.content.Replace(ctx, dataset.Content)
}
