package service

import (
	"context"
	"fmt"
	"time"

	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the business logic for the product catalog.
type ProductService interface {
	List(ctx context.Context, query listview.ProductQuery, page int) (listview.Page[domain.Product], error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

// List applies the query then paginates the filtered products.
func (s *productService) List(ctx context.Context, query listview.ProductQuery, page int) (listview.Page[domain.Product], error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return listview.Page[domain.Product]{}, fmt.Errorf("failed to list products: %w", err)
	}
	return listview.Paginate(query.Apply(products), page), nil
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Create assigns an id and timestamps and appends the product.
func (s *productService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	now := time.Now()
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.products.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// Update replaces the stored product, refreshing UpdatedAt and preserving
// the original creation time.
func (s *productService) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
