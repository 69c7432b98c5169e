package mockdata

import (
	"fmt"
	"strings"

	"commerce-admin/internal/domain"
)

var (
	campaignAudiences = []string{"new_customers", "returning_customers", "all"}
	campaignRegions   = []string{"US", "Europe", "Asia", "Global"}
)

// Campaigns generates n marketing campaigns. ROI is derived from an assumed
// fixed value per conversion against the amount spent.
func (g *Generator) Campaigns(n int) []domain.Campaign {
	campaigns := make([]domain.Campaign, 0, n)

	for i := 1; i <= n; i++ {
		campaignType := g.pick(domain.CampaignTypes)
		status := g.pick(domain.CampaignStatuses)

		budget := g.price(500, 5000)
		var spent float64
		if status == domain.CampaignStatusCompleted {
			spent = round2(budget * (0.7 + g.rnd.Float64()*0.3))
		} else {
			spent = round2(budget * g.rnd.Float64() * 0.5)
		}

		impressions := g.intn(1000, 100000)
		ctr := g.rnd.Float64()*5 + 0.5 // 0.5% - 5.5%
		clicks := int(float64(impressions) * ctr / 100)
		convRate := g.rnd.Float64()*7 + 1 // 1% - 8%
		conversions := int(float64(clicks) * convRate / 100)

		var roi float64
		if spent > 0 {
			roi = round2(float64(conversions) * ConversionValue / spent)
		}

		endDate := g.futureDate(30)
		if status == domain.CampaignStatusCompleted {
			endDate = g.pastDate(30)
		}

		campaigns = append(campaigns, domain.Campaign{
			ID:          seqID("campaign", i),
			Name:        fmt.Sprintf("%s Campaign %d", labelPhrase(campaignType), i),
			Type:        campaignType,
			Status:      status,
			StartDate:   g.pastDate(60),
			EndDate:     endDate,
			Budget:      budget,
			Spent:       spent,
			Description: fmt.Sprintf("Marketing campaign for %s", campaignType),
			Target: domain.CampaignTarget{
				Audience: g.pick(campaignAudiences),
				Regions:  g.pick(campaignRegions),
			},
			Performance: domain.CampaignPerformance{
				Impressions: impressions,
				Clicks:      clicks,
				Conversions: conversions,
				ROI:         roi,
			},
		})
	}

	return campaigns
}

// labelPhrase turns "social_media" into "Social Media".
func labelPhrase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		words[i] = labelWord(w)
	}
	return strings.Join(words, " ")
}
