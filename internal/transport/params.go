package transport

import (
	"net/http"
	"strconv"
	"time"

	"commerce-admin/internal/listview"
)

// queryPage parses the page query parameter, defaulting to 1. Out-of-range
// values are clamped later during pagination.
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// querySort parses sortBy and sortDir into a listview sort.
func querySort(r *http.Request) listview.Sort {
	return listview.Sort{
		Field:      r.URL.Query().Get("sortBy"),
		Descending: r.URL.Query().Get("sortDir") == "desc",
	}
}

// queryFloat parses an optional float parameter, nil when absent or
// malformed.
func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryInt parses an optional integer parameter, nil when absent or
// malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryBool parses an optional boolean parameter, nil when absent or
// malformed.
func queryBool(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// queryTime parses an optional time parameter, accepting RFC 3339 or a bare
// date. A zero time means the parameter is absent.
func queryTime(r *http.Request, name string) time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

// dateRange extracts the from/to parameters, defaulting to the trailing six
// calendar months ending now when both are absent.
func dateRange(r *http.Request, now time.Time) (time.Time, time.Time) {
	from := queryTime(r, "from")
	to := queryTime(r, "to")
	if from.IsZero() && to.IsZero() {
		return now.AddDate(0, -5, 0), now
	}
	return from, to
}
