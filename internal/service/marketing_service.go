package service

import (
	"context"
	"fmt"

	"commerce-admin/internal/analytics"
	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"
)

// MarketingService derives campaign analytics for the marketing page.
type MarketingService interface {
	Campaigns(ctx context.Context, query listview.CampaignQuery, page int) (listview.Page[domain.Campaign], error)
	Performance(ctx context.Context) ([]analytics.CampaignMetrics, error)
	TopByROI(ctx context.Context) ([]analytics.CampaignMetrics, error)
	Channels(ctx context.Context) ([]analytics.ChannelMetrics, error)
	Summary(ctx context.Context) (analytics.MarketingSummary, error)
}

type marketingService struct {
	campaigns repository.CampaignRepository
}

// NewMarketingService creates a new instance of MarketingService
func NewMarketingService(campaigns repository.CampaignRepository) MarketingService {
	return &marketingService{campaigns: campaigns}
}

// Campaigns applies the query then paginates the filtered campaigns.
func (s *marketingService) Campaigns(ctx context.Context, query listview.CampaignQuery, page int) (listview.Page[domain.Campaign], error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return listview.Page[domain.Campaign]{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return listview.Paginate(query.Apply(campaigns), page), nil
}

func (s *marketingService) Performance(ctx context.Context) ([]analytics.CampaignMetrics, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return analytics.CampaignPerformance(campaigns), nil
}

func (s *marketingService) TopByROI(ctx context.Context) ([]analytics.CampaignMetrics, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return analytics.TopCampaignsByROI(campaigns), nil
}

func (s *marketingService) Channels(ctx context.Context) ([]analytics.ChannelMetrics, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return analytics.ChannelPerformance(campaigns), nil
}

func (s *marketingService) Summary(ctx context.Context) (analytics.MarketingSummary, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return analytics.MarketingSummary{}, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return analytics.MarketingMetrics(campaigns), nil
}
