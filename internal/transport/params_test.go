package transport

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestQueryPage(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=abc", 1},
		{"page=-2", -2},
		{"page=0", 0},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/products?"+tt.query, nil)
		if got := queryPage(r); got != tt.want {
			t.Errorf("queryPage(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestQuerySort(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?sortBy=price&sortDir=desc", nil)
	sort := querySort(r)
	if sort.Field != "price" || !sort.Descending {
		t.Errorf("got %+v, want descending price sort", sort)
	}

	r = httptest.NewRequest("GET", "/api/products?sortBy=name", nil)
	sort = querySort(r)
	if sort.Field != "name" || sort.Descending {
		t.Errorf("got %+v, want ascending name sort", sort)
	}
}

func TestQueryFloat(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?minPrice=19.99&maxPrice=oops", nil)

	if v := queryFloat(r, "minPrice"); v == nil || *v != 19.99 {
		t.Errorf("minPrice = %v, want 19.99", v)
	}
	if v := queryFloat(r, "maxPrice"); v != nil {
		t.Errorf("malformed maxPrice = %v, want nil", v)
	}
	if v := queryFloat(r, "absent"); v != nil {
		t.Errorf("absent param = %v, want nil", v)
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/customers?minOrders=5&maxOrders=ten", nil)

	if v := queryInt(r, "minOrders"); v == nil || *v != 5 {
		t.Errorf("minOrders = %v, want 5", v)
	}
	if v := queryInt(r, "maxOrders"); v != nil {
		t.Errorf("malformed maxOrders = %v, want nil", v)
	}
}

func TestQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?inStock=true&featured=maybe", nil)

	if v := queryBool(r, "inStock"); v == nil || !*v {
		t.Errorf("inStock = %v, want true", v)
	}
	if v := queryBool(r, "featured"); v != nil {
		t.Errorf("malformed featured = %v, want nil", v)
	}
	if v := queryBool(r, "absent"); v != nil {
		t.Errorf("absent param = %v, want nil", v)
	}
}

func TestQueryTime(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/finance/transactions?from=2026-03-01&to=2026-06-15T12:30:00Z&bad=yesterday", nil)

	from := queryTime(r, "from")
	if want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC); !from.Equal(want) {
		t.Errorf("bare date from = %v, want %v", from, want)
	}

	to := queryTime(r, "to")
	if want := time.Date(2026, time.June, 15, 12, 30, 0, 0, time.UTC); !to.Equal(want) {
		t.Errorf("RFC 3339 to = %v, want %v", to, want)
	}

	if got := queryTime(r, "bad"); !got.IsZero() {
		t.Errorf("malformed time = %v, want zero", got)
	}
	if got := queryTime(r, "absent"); !got.IsZero() {
		t.Errorf("absent time = %v, want zero", got)
	}
}

func TestDateRange_DefaultsToTrailingSixMonths(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	r := httptest.NewRequest("GET", "/api/finance/revenue", nil)
	from, to := dateRange(r, now)
	if want := now.AddDate(0, -5, 0); !from.Equal(want) {
		t.Errorf("default from = %v, want %v", from, want)
	}
	if !to.Equal(now) {
		t.Errorf("default to = %v, want %v", to, now)
	}
}

func TestDateRange_ExplicitBounds(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	r := httptest.NewRequest("GET", "/api/finance/revenue?from=2026-01-01&to=2026-03-31", nil)
	from, to := dateRange(r, now)
	if !from.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v", from)
	}
	if !to.Equal(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("to = %v", to)
	}
}
