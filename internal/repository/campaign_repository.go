package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

// CampaignRepository defines the interface for campaign data access
type CampaignRepository interface {
	List(ctx context.Context) ([]domain.Campaign, error)
	Replace(ctx context.Context, campaigns []domain.Campaign) error
}

type campaignRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewCampaignRepository creates a new instance of CampaignRepository
func NewCampaignRepository(collections CollectionRepository, logger *zap.Logger) CampaignRepository {
	return &campaignRepository{collections: collections, logger: logger}
}

func (r *campaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	raw, err := r.collections.Get(ctx, KeyCampaigns)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.Campaign{}, nil
		}
		return nil, err
	}

	var campaigns []domain.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		r.logger.Warn("Failed to parse stored campaigns, falling back to empty",
			zap.Error(err))
		return []domain.Campaign{}, nil
	}

	return campaigns, nil
}

func (r *campaignRepository) Replace(ctx context.Context, campaigns []domain.Campaign) error {
	raw, err := json.Marshal(campaigns)
	if err != nil {
		return fmt.Errorf("failed to encode campaigns: %w", err)
	}
	return r.collections.Put(ctx, KeyCampaigns, raw)
}
