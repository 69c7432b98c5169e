package listview

import (
	"sort"
	"time"

	"commerce-admin/internal/domain"
)

// OrderQuery filters and orders the order table. Date bounds are inclusive
// on the order creation time; zero times deactivate the bound.
type OrderQuery struct {
	Search    string
	Status    string
	ProductID string
	DateFrom  time.Time
	DateTo    time.Time
	MinAmount *float64
	MaxAmount *float64
	Sort      Sort
}

// Apply runs search, filters and sort over a copy of orders.
func (q OrderQuery) Apply(orders []domain.Order) []domain.Order {
	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if !matches(q.Search, o.ID, o.Customer.Name, o.Customer.Email) {
			continue
		}
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if q.ProductID != "" && !orderContainsProduct(o, q.ProductID) {
			continue
		}
		if !q.DateFrom.IsZero() && o.CreatedAt.Before(q.DateFrom) {
			continue
		}
		if !q.DateTo.IsZero() && o.CreatedAt.After(q.DateTo) {
			continue
		}
		if q.MinAmount != nil && o.Total < *q.MinAmount {
			continue
		}
		if q.MaxAmount != nil && o.Total > *q.MaxAmount {
			continue
		}
		result = append(result, o)
	}

	q.sort(result)
	return result
}

func orderContainsProduct(o domain.Order, productID string) bool {
	for _, item := range o.Items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

func (q OrderQuery) sort(orders []domain.Order) {
	if q.Sort.Field == "" {
		return
	}
	less := func(a, b domain.Order) bool {
		switch q.Sort.Field {
		case "total":
			return a.Total < b.Total
		case "status":
			return a.Status < b.Status
		case "customer":
			return a.Customer.Name < b.Customer.Name
		case "createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return false
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if q.Sort.Descending {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}
