package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

// ContentRepository defines the interface for CMS content data access
type ContentRepository interface {
	List(ctx context.Context) ([]domain.ContentItem, error)
	Replace(ctx context.Context, items []domain.ContentItem) error
}

type contentRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewContentRepository creates a new instance of ContentRepository
func NewContentRepository(collections CollectionRepository, logger *zap.Logger) ContentRepository {
	return &contentRepository{collections: collections, logger: logger}
}

func (r *contentRepository) List(ctx context.Context) ([]domain.ContentItem, error) {
	raw, err := r.collections.Get(ctx, KeyContent)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.ContentItem{}, nil
		}
		return nil, err
	}

	var items []domain.ContentItem
	if err := json.Unmarshal(raw, &items); err != nil {
		r.logger.Warn("Failed to parse stored content, falling back to empty",
			zap.Error(err))
		return []domain.ContentItem{}, nil
	}

	return items, nil
}

func (r *contentRepository) Replace(ctx context.Context, items []domain.ContentItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	return r.collections.Put(ctx, KeyContent, raw)
}
