package analytics

import (
	"sort"

	"commerce-admin/internal/domain"
)

// TopCampaignLimit caps the ROI leaderboard.
const TopCampaignLimit = 5

// CampaignMetrics is one campaign with its derived rates.
type CampaignMetrics struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	Budget         float64 `json:"budget"`
	Spent          float64 `json:"spent"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
	ROI            float64 `json:"roi"`
}

// ChannelMetrics aggregates the campaigns of one marketing channel.
type ChannelMetrics struct {
	Name           string  `json:"name"`
	Impressions    int     `json:"impressions"`
	Clicks         int     `json:"clicks"`
	Conversions    int     `json:"conversions"`
	Spent          float64 `json:"spent"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
}

// MarketingSummary feeds the marketing dashboard cards.
type MarketingSummary struct {
	TotalBudget       float64 `json:"totalBudget"`
	TotalSpent        float64 `json:"totalSpent"`
	ActiveBudget      float64 `json:"activeBudget"`
	ActiveSpent       float64 `json:"activeSpent"`
	ActiveCampaigns   int     `json:"activeCampaigns"`
	TotalImpressions  int     `json:"totalImpressions"`
	TotalClicks       int     `json:"totalClicks"`
	TotalConversions  int     `json:"totalConversions"`
	AverageCTR        float64 `json:"averageCtr"`
	AverageConversion float64 `json:"averageConversion"`
}

// ctr computes clicks/impressions as a percentage, 0 when there were no
// impressions.
func ctr(clicks, impressions int) float64 {
	if impressions == 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// conversionRate computes conversions/clicks as a percentage, 0 when there
// were no clicks.
func conversionRate(conversions, clicks int) float64 {
	if clicks == 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

// campaignMetrics derives the per-campaign rates.
func campaignMetrics(c domain.Campaign) CampaignMetrics {
	return CampaignMetrics{
		ID:             c.ID,
		Name:           c.Name,
		Type:           c.Type,
		Status:         c.Status,
		Budget:         c.Budget,
		Spent:          c.Spent,
		Impressions:    c.Performance.Impressions,
		Clicks:         c.Performance.Clicks,
		Conversions:    c.Performance.Conversions,
		CTR:            ctr(c.Performance.Clicks, c.Performance.Impressions),
		ConversionRate: conversionRate(c.Performance.Conversions, c.Performance.Clicks),
		ROI:            c.Performance.ROI,
	}
}

// CampaignPerformance derives rates for every campaign, in input order.
func CampaignPerformance(campaigns []domain.Campaign) []CampaignMetrics {
	metrics := make([]CampaignMetrics, 0, len(campaigns))
	for _, c := range campaigns {
		metrics = append(metrics, campaignMetrics(c))
	}
	return metrics
}

// TopCampaignsByROI returns at most five campaigns sorted descending by
// stored ROI. Ties keep input order.
func TopCampaignsByROI(campaigns []domain.Campaign) []CampaignMetrics {
	metrics := CampaignPerformance(campaigns)
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].ROI > metrics[j].ROI
	})
	if len(metrics) > TopCampaignLimit {
		metrics = metrics[:TopCampaignLimit:TopCampaignLimit]
	}
	return metrics
}

// ChannelPerformance groups campaigns by channel type, sums the raw
// counters, and derives the aggregate rates, sorted descending by spend.
func ChannelPerformance(campaigns []domain.Campaign) []ChannelMetrics {
	byType := make(map[string]*ChannelMetrics)
	for _, c := range campaigns {
		ch, ok := byType[c.Type]
		if !ok {
			ch = &ChannelMetrics{Name: labelCase(c.Type)}
			byType[c.Type] = ch
		}
		ch.Impressions += c.Performance.Impressions
		ch.Clicks += c.Performance.Clicks
		ch.Conversions += c.Performance.Conversions
		ch.Spent += c.Spent
	}

	keys := make([]string, 0, len(byType))
	for k := range byType {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	channels := make([]ChannelMetrics, 0, len(keys))
	for _, k := range keys {
		ch := byType[k]
		ch.CTR = ctr(ch.Clicks, ch.Impressions)
		ch.ConversionRate = conversionRate(ch.Conversions, ch.Clicks)
		channels = append(channels, *ch)
	}
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].Spent > channels[j].Spent
	})
	return channels
}

// MarketingMetrics summarizes all campaigns into the overview cards. Active
// figures cover only campaigns currently in the active status.
func MarketingMetrics(campaigns []domain.Campaign) MarketingSummary {
	var summary MarketingSummary
	for _, c := range campaigns {
		summary.TotalBudget += c.Budget
		summary.TotalSpent += c.Spent
		summary.TotalImpressions += c.Performance.Impressions
		summary.TotalClicks += c.Performance.Clicks
		summary.TotalConversions += c.Performance.Conversions
		if c.Status == domain.CampaignStatusActive {
			summary.ActiveCampaigns++
			summary.ActiveBudget += c.Budget
			summary.ActiveSpent += c.Spent
		}
	}
	summary.AverageCTR = ctr(summary.TotalClicks, summary.TotalImpressions)
	summary.AverageConversion = conversionRate(summary.TotalConversions, summary.TotalClicks)
	return summary
}
