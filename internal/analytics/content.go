package analytics

import "commerce-admin/internal/domain"

// ContentSummary feeds the content dashboard cards.
type ContentSummary struct {
	TotalItems int         `json:"totalItems"`
	Published  int         `json:"published"`
	Drafts     int         `json:"drafts"`
	Scheduled  int         `json:"scheduled"`
	WithMedia  int         `json:"withMedia"`
	ByType     []DataPoint `json:"byType"`
	ByStatus   []DataPoint `json:"byStatus"`
}

// ContentMetrics counts content items per type and status and tallies the
// headline figures.
func ContentMetrics(items []domain.ContentItem) ContentSummary {
	summary := ContentSummary{TotalItems: len(items)}

	byType := make(map[string]float64)
	byStatus := make(map[string]float64)
	for _, item := range items {
		byType[item.Type]++
		byStatus[item.Status]++
		switch item.Status {
		case domain.ContentStatusPublished:
			summary.Published++
		case domain.ContentStatusDraft:
			summary.Drafts++
		case domain.ContentStatusScheduled:
			summary.Scheduled++
		}
		if len(item.Media) > 0 {
			summary.WithMedia++
		}
	}

	summary.ByType = sortedPoints(byType, labelCase)
	summary.ByStatus = sortedPoints(byStatus, labelCase)
	return summary
}
