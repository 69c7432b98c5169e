package analytics

import (
	"time"

	"commerce-admin/internal/domain"
)

// Overview feeds the top-level dashboard cards. Change percentages compare
// order activity in the trailing 30 days against the 30 days before that.
type Overview struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	RevenueChange  float64 `json:"revenueChange"`
	OrdersChange   float64 `json:"ordersChange"`
	PendingOrders  int     `json:"pendingOrders"`
	LowStock       int     `json:"lowStock"`
}

// LowStockThreshold marks a product as running low.
const LowStockThreshold = 10

// DashboardOverview computes the landing-page summary. Revenue is the sum of
// order totals regardless of status, matching what the order list displays.
func DashboardOverview(orders []domain.Order, products []domain.Product, customers []domain.Customer, now time.Time) Overview {
	overview := Overview{
		TotalOrders:    len(orders),
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}

	periodStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var currentRevenue, previousRevenue float64
	var currentOrders, previousOrders int
	for _, o := range orders {
		overview.TotalRevenue += o.Total
		if o.Status == domain.OrderStatusPending {
			overview.PendingOrders++
		}
		switch {
		case !o.CreatedAt.Before(periodStart) && !o.CreatedAt.After(now):
			currentRevenue += o.Total
			currentOrders++
		case !o.CreatedAt.Before(previousStart) && o.CreatedAt.Before(periodStart):
			previousRevenue += o.Total
			previousOrders++
		}
	}

	for _, p := range products {
		if p.Stock < LowStockThreshold {
			overview.LowStock++
		}
	}

	overview.RevenueChange = changePercent(currentRevenue, previousRevenue)
	overview.OrdersChange = changePercent(float64(currentOrders), float64(previousOrders))
	return overview
}
