// Package analytics contains the derivation pipelines that turn raw
// collections into the chart-ready and summary-card shapes. Every function
// is pure and total over empty input: empty collections or missing optional
// parameters yield empty output, never an error.
package analytics

import (
	"sort"
	"strings"
	"time"
)

// DataPoint is a labeled value, the common chart shape.
type DataPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// labelCase turns "social_media" into "Social Media" and "pending" into
// "Pending".
func labelCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// startOfMonth truncates t to the first day of its calendar month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthsBetween returns the first day of every calendar month from start to
// end inclusive, in chronological order. An inverted range is empty.
func monthsBetween(start, end time.Time) []time.Time {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}

	months := []time.Time{}
	for m := startOfMonth(start); !m.After(startOfMonth(end)); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}

// monthLabel formats a month bucket as "Jan 2006".
func monthLabel(month time.Time) string {
	return month.Format("Jan 2006")
}

// inMonth reports whether t falls inside the calendar month starting at
// month.
func inMonth(t, month time.Time) bool {
	next := month.AddDate(0, 1, 0)
	return !t.Before(month) && t.Before(next)
}

// sortedPoints converts a grouped sum map into data points sorted descending
// by value. Keys are pre-sorted so ties resolve deterministically.
func sortedPoints(sums map[string]float64, label func(string) string) []DataPoint {
	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]DataPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, DataPoint{Name: label(k), Value: sums[k]})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
	return points
}
