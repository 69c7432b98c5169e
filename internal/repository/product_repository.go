package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access. The
// collection is decoded whole, mutated immutably, and written back whole.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Replace(ctx context.Context, products []domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Add(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(collections CollectionRepository, logger *zap.Logger) ProductRepository {
	return &productRepository{collections: collections, logger: logger}
}

// List decodes the stored product collection. A missing slot or a corrupt
// payload degrades to an empty slice rather than an error.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	raw, err := r.collections.Get(ctx, KeyProducts)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.Product{}, nil
		}
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		r.logger.Warn("Failed to parse stored products, falling back to empty",
			zap.Error(err))
		return []domain.Product{}, nil
	}

	return products, nil
}

// Replace writes the full product collection
func (r *productRepository) Replace(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}
	return r.collections.Put(ctx, KeyProducts, raw)
}

// FindByID retrieves a single product by id
func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Add appends a product to the stored collection
func (r *productRepository) Add(ctx context.Context, product domain.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}
	return r.Replace(ctx, append(products, product))
}

// Update replaces the product with a matching id
func (r *productRepository) Update(ctx context.Context, product domain.Product) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	updated := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID == product.ID {
			updated = append(updated, product)
			found = true
		} else {
			updated = append(updated, p)
		}
	}

	if !found {
		return ErrProductNotFound
	}
	return r.Replace(ctx, updated)
}

// Delete removes the product with a matching id
func (r *productRepository) Delete(ctx context.Context, id string) error {
	products, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}

	if len(filtered) == len(products) {
		return ErrProductNotFound
	}
	return r.Replace(ctx, filtered)
}
