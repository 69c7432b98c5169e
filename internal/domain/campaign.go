package domain

import "time"

// Campaign types (marketing channels).
var CampaignTypes = []string{
	"email",
	"social_media",
	"search",
	"display",
	"referral",
}

// Campaign statuses.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// CampaignStatuses lists every campaign status in display order.
var CampaignStatuses = []string{
	CampaignStatusDraft,
	CampaignStatusScheduled,
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusCompleted,
}

// CampaignTarget describes who a campaign is aimed at.
type CampaignTarget struct {
	Audience string `json:"audience"`
	Regions  string `json:"regions"`
}

// CampaignPerformance holds the raw counters a campaign accumulated. ROI is
// stored rather than derived; CTR and conversion rate are computed on demand.
type CampaignPerformance struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	ROI         float64 `json:"roi"`
}

// Campaign represents a marketing campaign.
type Campaign struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	Status      string              `json:"status"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	Budget      float64             `json:"budget"`
	Spent       float64             `json:"spent"`
	Description string              `json:"description"`
	Target      CampaignTarget      `json:"target"`
	Performance CampaignPerformance `json:"performance"`
}
