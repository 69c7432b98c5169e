package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/analytics"
	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"
)

// ContentService serves the CMS content table and its summary cards.
type ContentService interface {
	List(ctx context.Context, query listview.ContentQuery, page int) (listview.Page[domain.ContentItem], error)
	Metrics(ctx context.Context) (analytics.ContentSummary, error)
}

type contentService struct {
	content repository.ContentRepository
}

// NewContentService creates a new instance of ContentService
func NewContentService(content repository.ContentRepository) ContentService {
	return &contentService{content: content}
}

// List applies the query then paginates the filtered items.
func (s *contentService) List(ctx context.Context, query listview.ContentQuery, page int) (listview.Page[domain.ContentItem], error) {
	items, err := s.content.List(ctx)
	if err != nil {
		return listview.Page[domain.ContentItem]{}, fmt.Errorf("failed to list content: %w", err)
	}
	return listview.Paginate(query.Apply(items), page), nil
}

func (s *contentService) Metrics(ctx context.Context) (analytics.ContentSummary, error) {
	items, err := s.content.List(ctx)
	if err != nil {
		return analytics.ContentSummary{}, fmt.Errorf("failed to list content: %w", err)
	}
	return analytics.ContentMetrics(items), nil
}
