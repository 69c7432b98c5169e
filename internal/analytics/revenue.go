package analytics

import (
	"math"
	"time"

	"commerce-admin/internal/domain"
)

// RevenuePoint is one calendar-month bucket of the revenue time series.
type RevenuePoint struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Refunds  float64 `json:"refunds"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// MarginPoint is one calendar-month bucket of the margin time series.
type MarginPoint struct {
	Name        string  `json:"name"`
	GrossMargin float64 `json:"grossMargin"`
	NetMargin   float64 `json:"netMargin"`
}

// FinancialSummary aggregates a date range into the financial dashboard
// cards, with month-over-month change percentages.
type FinancialSummary struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalExpenses  float64 `json:"totalExpenses"`
	GrossProfit    float64 `json:"grossProfit"`
	NetProfit      float64 `json:"netProfit"`
	ProfitMargin   float64 `json:"profitMargin"`
	RevenueChange  float64 `json:"revenueChange"`
	ExpensesChange float64 `json:"expensesChange"`
	ProfitChange   float64 `json:"profitChange"`
}

// monthTotals computes the revenue components for transactions inside the
// calendar month starting at month.
func monthTotals(transactions []domain.Transaction, month time.Time) (revenue, refunds, expenses float64) {
	var sales float64
	for _, t := range transactions {
		if !inMonth(t.Date, month) {
			continue
		}
		switch {
		case t.Type == domain.TransactionTypeSale:
			sales += t.Amount
		case t.Type == domain.TransactionTypeRefund:
			refunds += math.Abs(t.Amount)
		default:
			expenses += t.Amount
		}
	}
	return sales - refunds, refunds, expenses
}

// RevenueOverTime buckets transactions into calendar months spanning
// [start, end] inclusive and computes revenue, expenses and profit per
// bucket. Months with no matching transactions emit zeros. A zero start or
// end yields an empty series.
func RevenueOverTime(transactions []domain.Transaction, start, end time.Time) []RevenuePoint {
	months := monthsBetween(start, end)
	points := make([]RevenuePoint, 0, len(months))

	for _, month := range months {
		revenue, refunds, expenses := monthTotals(transactions, month)
		points = append(points, RevenuePoint{
			Name:     monthLabel(month),
			Revenue:  revenue,
			Refunds:  refunds,
			Expenses: expenses,
			Profit:   revenue - expenses,
		})
	}

	return points
}

// ProfitMarginOverTime buckets like RevenueOverTime and computes gross and
// net margin percentages per month.
//
// The gross margin here relates revenue to itself, so it reads 100 whenever
// revenue is positive. That mirrors the formula this dashboard has always
// shipped with; a true gross margin would relate revenue to cost of goods.
// Preserved as-is because downstream consumers render it.
func ProfitMarginOverTime(transactions []domain.Transaction, start, end time.Time) []MarginPoint {
	months := monthsBetween(start, end)
	points := make([]MarginPoint, 0, len(months))

	for _, month := range months {
		revenue, _, expenses := monthTotals(transactions, month)

		var grossMargin, netMargin float64
		if revenue > 0 {
			grossMargin = revenue / revenue * 100
			netMargin = (revenue - expenses) / revenue * 100
		}

		points = append(points, MarginPoint{
			Name:        monthLabel(month),
			GrossMargin: grossMargin,
			NetMargin:   netMargin,
		})
	}

	return points
}

// ExpenseBreakdown groups the non-sale, non-refund transactions inside
// [start, end] by type and sums the amounts, sorted descending.
func ExpenseBreakdown(transactions []domain.Transaction, start, end time.Time) []DataPoint {
	if start.IsZero() || end.IsZero() {
		return []DataPoint{}
	}

	sums := make(map[string]float64)
	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		sums[t.Type] += t.Amount
	}

	return sortedPoints(sums, labelCase)
}

// Financials summarizes [start, end] and compares the current calendar month
// against the previous one. When a previous-month figure is zero the change
// reports 100.
func Financials(transactions []domain.Transaction, start, end time.Time, now time.Time) FinancialSummary {
	if start.IsZero() || end.IsZero() {
		return FinancialSummary{}
	}

	var sales, refunds, expenses float64
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		switch {
		case t.Type == domain.TransactionTypeSale:
			sales += t.Amount
		case t.Type == domain.TransactionTypeRefund:
			refunds += math.Abs(t.Amount)
		default:
			expenses += t.Amount
		}
	}

	revenue := sales - refunds
	netProfit := revenue - expenses

	summary := FinancialSummary{
		TotalRevenue:  revenue,
		TotalExpenses: expenses,
		GrossProfit:   revenue,
		NetProfit:     netProfit,
	}
	if revenue > 0 {
		summary.ProfitMargin = netProfit / revenue * 100
	}

	currentMonth := startOfMonth(now)
	previousMonth := currentMonth.AddDate(0, -1, 0)

	curRevenue, _, curExpenses := monthTotals(transactions, currentMonth)
	prevRevenue, _, prevExpenses := monthTotals(transactions, previousMonth)

	summary.RevenueChange = changePercent(curRevenue, prevRevenue)
	summary.ExpensesChange = changePercent(curExpenses, prevExpenses)
	summary.ProfitChange = changePercent(curRevenue-curExpenses, prevRevenue-prevExpenses)

	return summary
}

// changePercent reports the relative change from previous to current,
// degenerating to 100 when the previous value is zero.
func changePercent(current, previous float64) float64 {
	if previous == 0 {
		return 100
	}
	return (current - previous) / previous * 100
}
