package analytics

import (
	"time"

	"commerce-admin/internal/domain"
)

// Spend band labels, emitted in this order. The bands are contiguous and
// exhaustive over [0, inf): every customer lands in exactly one.
const (
	BandHigh    = "High Value (>$1000)"
	BandMedium  = "Medium Value ($500-$1000)"
	BandLow     = "Low Value ($100-$499)"
	BandMinimal = "Minimal (<$100)"
)

// ActivityPoint is one month of the user activity series.
type ActivityPoint struct {
	Name            string `json:"name"`
	NewCustomers    int    `json:"newCustomers"`
	ActiveCustomers int    `json:"activeCustomers"`
}

// SegmentsByStatus counts customers per status, label-cased, sorted
// descending by count.
func SegmentsByStatus(customers []domain.Customer) []DataPoint {
	counts := make(map[string]float64)
	for _, c := range customers {
		counts[c.Status]++
	}
	return sortedPoints(counts, labelCase)
}

// SegmentsBySpend buckets customers into the fixed spend bands, emitted
// high-to-low regardless of count.
func SegmentsBySpend(customers []domain.Customer) []DataPoint {
	var high, medium, low, minimal float64
	for _, c := range customers {
		switch {
		case c.TotalSpent > 1000:
			high++
		case c.TotalSpent >= 500:
			medium++
		case c.TotalSpent >= 100:
			low++
		default:
			minimal++
		}
	}

	return []DataPoint{
		{Name: BandHigh, Value: high},
		{Name: BandMedium, Value: medium},
		{Name: BandLow, Value: low},
		{Name: BandMinimal, Value: minimal},
	}
}

// UserActivity walks the trailing six calendar months ending at now and
// counts, per month, customers created in that month (new) and customers
// whose last purchase fell in that month (active).
func UserActivity(customers []domain.Customer, now time.Time) []ActivityPoint {
	if now.IsZero() {
		return []ActivityPoint{}
	}

	end := startOfMonth(now)
	months := monthsBetween(end.AddDate(0, -5, 0), end)

	points := make([]ActivityPoint, 0, len(months))
	for _, month := range months {
		point := ActivityPoint{Name: monthLabel(month)}
		for _, c := range customers {
			if inMonth(c.CreatedAt, month) {
				point.NewCustomers++
			}
			if inMonth(c.LastPurchase, month) {
				point.ActiveCustomers++
			}
		}
		points = append(points, point)
	}

	return points
}
