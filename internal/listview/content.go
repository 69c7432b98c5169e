package listview

import (
	"sort"
	"strings"

	"commerce-admin/internal/domain"
)

// ContentQuery filters and orders the content table.
type ContentQuery struct {
	Search string
	Type   string
	Status string
	Author string
	Sort   Sort
}

// Apply runs search, filters and sort over a copy of items.
func (q ContentQuery) Apply(items []domain.ContentItem) []domain.ContentItem {
	result := make([]domain.ContentItem, 0, len(items))
	for _, item := range items {
		if !matches(q.Search, item.Title, item.Author, item.Body) {
			continue
		}
		if q.Type != "" && item.Type != q.Type {
			continue
		}
		if q.Status != "" && item.Status != q.Status {
			continue
		}
		if q.Author != "" && item.Author != q.Author {
			continue
		}
		result = append(result, item)
	}

	q.sort(result)
	return result
}

func (q ContentQuery) sort(items []domain.ContentItem) {
	if q.Sort.Field == "" {
		return
	}
	less := func(a, b domain.ContentItem) bool {
		switch q.Sort.Field {
		case "title":
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case "updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return false
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if q.Sort.Descending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
