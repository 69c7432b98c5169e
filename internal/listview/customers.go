package listview

import (
	"sort"
	"strings"

	"commerce-admin/internal/domain"
)

// CustomerQuery filters and orders the customer table.
type CustomerQuery struct {
	Search    string
	Status    string
	MinSpent  *float64
	MaxSpent  *float64
	MinOrders *int
	MaxOrders *int
	Sort      Sort
}

// Apply runs search, filters and sort over a copy of customers.
func (q CustomerQuery) Apply(customers []domain.Customer) []domain.Customer {
	result := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if !matches(q.Search, c.Name, c.Email, c.Phone) {
			continue
		}
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if q.MinSpent != nil && c.TotalSpent < *q.MinSpent {
			continue
		}
		if q.MaxSpent != nil && c.TotalSpent > *q.MaxSpent {
			continue
		}
		if q.MinOrders != nil && c.TotalOrders < *q.MinOrders {
			continue
		}
		if q.MaxOrders != nil && c.TotalOrders > *q.MaxOrders {
			continue
		}
		result = append(result, c)
	}

	q.sort(result)
	return result
}

func (q CustomerQuery) sort(customers []domain.Customer) {
	if q.Sort.Field == "" {
		return
	}
	less := func(a, b domain.Customer) bool {
		switch q.Sort.Field {
		case "name":
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case "totalSpent":
			return a.TotalSpent < b.TotalSpent
		case "totalOrders":
			return a.TotalOrders < b.TotalOrders
		case "lastPurchase":
			return a.LastPurchase.Before(b.LastPurchase)
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return false
		}
	}
	sort.SliceStable(customers, func(i, j int) bool {
		if q.Sort.Descending {
			return less(customers[j], customers[i])
		}
		return less(customers[i], customers[j])
	})
}
