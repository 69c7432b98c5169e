package analytics

import (
	"sort"

	"commerce-admin/internal/domain"
)

// TopProductLimit is how many products get their own slice before the rest
// fold into an "Other Products" bucket.
const TopProductLimit = 5

// StatusCount pairs a display status with how many records carry it.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// RegionSales pairs a shipping region with its summed order totals.
type RegionSales struct {
	Region string  `json:"region"`
	Total  float64 `json:"total"`
}

// TopProducts accumulates line-item sale totals per product id across all
// orders, resolves names against the product collection ("Unknown Product"
// for dangling references), and returns the top five by amount plus an
// "Other Products" bucket folding the remainder when more than five products
// sold.
func TopProducts(orders []domain.Order, products []domain.Product) []DataPoint {
	sums := make(map[string]float64)
	for _, order := range orders {
		for _, item := range order.Items {
			sums[item.Product.ID] += item.Total
		}
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	points := sortedPoints(sums, func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return "Unknown Product"
	})

	if len(points) <= TopProductLimit {
		return points
	}

	top := points[:TopProductLimit:TopProductLimit]
	var other float64
	for _, p := range points[TopProductLimit:] {
		other += p.Value
	}
	return append(top, DataPoint{Name: "Other Products", Value: other})
}

// OrderStatusDistribution counts orders per status, label-cased and sorted
// descending by count.
func OrderStatusDistribution(orders []domain.Order) []StatusCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]StatusCount, 0, len(keys))
	for _, k := range keys {
		result = append(result, StatusCount{Status: labelCase(k), Count: counts[k]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// GeographicSales groups orders by shipping-address state and sums the order
// totals, sorted descending. Orders without a state are excluded.
func GeographicSales(orders []domain.Order) []RegionSales {
	sums := make(map[string]float64)
	for _, o := range orders {
		if o.ShippingAddress.State == "" {
			continue
		}
		sums[o.ShippingAddress.State] += o.Total
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]RegionSales, 0, len(keys))
	for _, k := range keys {
		result = append(result, RegionSales{Region: k, Total: sums[k]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}
