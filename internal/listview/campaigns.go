package listview

import (
	"sort"

	"commerce-admin/internal/domain"
)

// CampaignQuery filters and orders the campaign table.
type CampaignQuery struct {
	Search string
	Type   string
	Status string
	Sort   Sort
}

// Apply runs search, filters and sort over a copy of campaigns.
func (q CampaignQuery) Apply(campaigns []domain.Campaign) []domain.Campaign {
	result := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !matches(q.Search, c.Name, c.Description) {
			continue
		}
		if q.Type != "" && c.Type != q.Type {
			continue
		}
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		result = append(result, c)
	}

	q.sort(result)
	return result
}

func (q CampaignQuery) sort(campaigns []domain.Campaign) {
	if q.Sort.Field == "" {
		return
	}
	less := func(a, b domain.Campaign) bool {
		switch q.Sort.Field {
		case "budget":
			return a.Budget < b.Budget
		case "spent":
			return a.Spent < b.Spent
		case "roi":
			return a.Performance.ROI < b.Performance.ROI
		case "startDate":
			return a.StartDate.Before(b.StartDate)
		case "name":
			return a.Name < b.Name
		default:
			return false
		}
	}
	sort.SliceStable(campaigns, func(i, j int) bool {
		if q.Sort.Descending {
			return less(campaigns[j], campaigns[i])
		}
		return less(campaigns[i], campaigns[j])
	})
}
