package listview

import (
	"sort"
	"strings"

	"commerce-admin/internal/domain"
)

// ProductQuery filters and orders the product table. Nil bounds mean the
// filter is inactive.
type ProductQuery struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Sort     Sort
}

// Apply runs search, filters and sort over a copy of products. The input
// slice is never reordered.
func (q ProductQuery) Apply(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matches(q.Search, p.Name, p.SKU, p.Category, p.Description) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.InStock != nil && *q.InStock != (p.Stock > 0) {
			continue
		}
		result = append(result, p)
	}

	q.sort(result)
	return result
}

func (q ProductQuery) sort(products []domain.Product) {
	less := func(a, b domain.Product) bool {
		switch q.Sort.Field {
		case "price":
			return a.Price < b.Price
		case "stock":
			return a.Stock < b.Stock
		case "rating":
			return a.Rating < b.Rating
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		default:
			return false
		}
	}
	if q.Sort.Field == "" {
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		if q.Sort.Descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
