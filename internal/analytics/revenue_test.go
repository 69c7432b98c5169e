package analytics

import (
	"math"
	"testing"
	"time"

	"commerce-admin/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func tx(typ string, amount float64, date time.Time) domain.Transaction {
	return domain.Transaction{Type: typ, Amount: amount, Date: date, Status: domain.TransactionStatusCompleted}
}

func TestRevenueOverTime_EmitsOneBucketPerMonth(t *testing.T) {
	start := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC)

	points := RevenueOverTime(nil, start, end)
	if len(points) != 6 {
		t.Fatalf("expected 6 month buckets, got %d", len(points))
	}
	if points[0].Name != "Jan 2026" || points[5].Name != "Jun 2026" {
		t.Errorf("unexpected bucket labels: %s .. %s", points[0].Name, points[5].Name)
	}
	for _, p := range points {
		if p.Revenue != 0 || p.Expenses != 0 || p.Profit != 0 {
			t.Errorf("empty ledger should emit zero buckets, got %+v", p)
		}
	}
}

func TestRevenueOverTime_BucketsSalesRefundsAndExpenses(t *testing.T) {
	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		tx(domain.TransactionTypeSale, 500, march),
		tx(domain.TransactionTypeSale, 300, march),
		tx(domain.TransactionTypeRefund, -100, march),
		tx("marketing", 150, march),
		// Outside the range, must be ignored.
		tx(domain.TransactionTypeSale, 999, march.AddDate(0, 2, 0)),
	}

	points := RevenueOverTime(transactions, march, march)
	if len(points) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(points))
	}

	p := points[0]
	if p.Revenue != 700 {
		t.Errorf("revenue = %v, want 700", p.Revenue)
	}
	if p.Refunds != 100 {
		t.Errorf("refunds = %v, want 100", p.Refunds)
	}
	if p.Expenses != 150 {
		t.Errorf("expenses = %v, want 150", p.Expenses)
	}
	if p.Profit != 550 {
		t.Errorf("profit = %v, want 550", p.Profit)
	}
}

func TestRevenueOverTime_ZeroRangeIsEmpty(t *testing.T) {
	if got := RevenueOverTime(nil, time.Time{}, time.Now()); len(got) != 0 {
		t.Errorf("zero start should yield empty series, got %d points", len(got))
	}
	if got := RevenueOverTime(nil, time.Now(), time.Time{}); len(got) != 0 {
		t.Errorf("zero end should yield empty series, got %d points", len(got))
	}
}

func TestProperty_RevenueBucketsPartitionTheLedger(t *testing.T) {
	properties := gopter.NewProperties(nil)

	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	properties.Property("every in-range sale lands in exactly one bucket", prop.ForAll(
		func(amounts []float64, dayOffsets []int) bool {
			n := len(amounts)
			if len(dayOffsets) < n {
				n = len(dayOffsets)
			}

			var transactions []domain.Transaction
			var total float64
			for i := 0; i < n; i++ {
				amount := math.Abs(amounts[i])
				date := start.AddDate(0, 0, dayOffsets[i]%180)
				transactions = append(transactions, tx(domain.TransactionTypeSale, amount, date))
				total += amount
			}

			points := RevenueOverTime(transactions, start, end)
			if len(points) != 6 {
				return false
			}

			var bucketed float64
			for _, p := range points {
				bucketed += p.Revenue
			}
			return math.Abs(bucketed-total) < 1e-6
		},
		gen.SliceOf(gen.Float64Range(0, 10000)),
		gen.SliceOf(gen.IntRange(0, 179)),
	))

	properties.TestingRun(t)
}

func TestProfitMarginOverTime_GrossMarginReads100WhenRevenuePositive(t *testing.T) {
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		tx(domain.TransactionTypeSale, 1000, march),
		tx("operations", 400, march),
	}

	points := ProfitMarginOverTime(transactions, march, march)
	if len(points) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(points))
	}
	if points[0].GrossMargin != 100 {
		t.Errorf("grossMargin = %v, want 100", points[0].GrossMargin)
	}
	if points[0].NetMargin != 60 {
		t.Errorf("netMargin = %v, want 60", points[0].NetMargin)
	}
}

func TestProfitMarginOverTime_ZeroRevenueMonthIsZero(t *testing.T) {
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		tx("salary", 800, march),
	}

	points := ProfitMarginOverTime(transactions, march, march)
	if points[0].GrossMargin != 0 || points[0].NetMargin != 0 {
		t.Errorf("margins should be 0 without revenue, got %+v", points[0])
	}
}

func TestExpenseBreakdown_GroupsAndSorts(t *testing.T) {
	march := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	transactions := []domain.Transaction{
		tx("marketing", 100, march),
		tx("marketing", 250, march),
		tx("salary", 900, march),
		tx(domain.TransactionTypeSale, 5000, march),
		tx(domain.TransactionTypeRefund, -50, march),
	}

	points := ExpenseBreakdown(transactions, march, march.AddDate(0, 0, 10))
	if len(points) != 2 {
		t.Fatalf("expected 2 expense groups, got %d", len(points))
	}
	if points[0].Name != "Salary" || points[0].Value != 900 {
		t.Errorf("first group = %+v, want Salary/900", points[0])
	}
	if points[1].Name != "Marketing" || points[1].Value != 350 {
		t.Errorf("second group = %+v, want Marketing/350", points[1])
	}
}

func TestChangePercent(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{500, 0, 100},
		{0, 0, 100},
	}

	for _, tc := range cases {
		if got := changePercent(tc.current, tc.previous); got != tc.want {
			t.Errorf("changePercent(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestFinancials_SummaryAndMonthOverMonth(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	may := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		tx(domain.TransactionTypeSale, 1000, may),
		tx(domain.TransactionTypeSale, 1500, june),
		tx("operations", 200, may),
		tx("operations", 300, june),
	}

	summary := Financials(transactions, may.AddDate(0, -1, 0), now, now)

	if summary.TotalRevenue != 2500 {
		t.Errorf("totalRevenue = %v, want 2500", summary.TotalRevenue)
	}
	if summary.TotalExpenses != 500 {
		t.Errorf("totalExpenses = %v, want 500", summary.TotalExpenses)
	}
	if summary.NetProfit != 2000 {
		t.Errorf("netProfit = %v, want 2000", summary.NetProfit)
	}
	if summary.ProfitMargin != 80 {
		t.Errorf("profitMargin = %v, want 80", summary.ProfitMargin)
	}
	if summary.RevenueChange != 50 {
		t.Errorf("revenueChange = %v, want 50", summary.RevenueChange)
	}
	if summary.ExpensesChange != 50 {
		t.Errorf("expensesChange = %v, want 50", summary.ExpensesChange)
	}
}
