// Package listview implements the table behavior shared by every admin
// collection screen: case-insensitive substring search, field filters,
// toggling single-column sorts, and fixed-size pagination. Queries apply
// search, then filters, then sort; pagination happens last over the
// filtered result.
package listview

import "strings"

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Page is one page of a filtered collection plus the figures the table
// footer renders.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate slices items into the requested page. The page number clamps to
// [1, totalPages]; an empty collection yields page 1 of 1 with no items.
func Paginate[T any](items []T, page int) Page[T] {
	totalItems := len(items)
	totalPages := (totalItems + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// Sort describes the active single-column sort.
type Sort struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Toggle applies a column click: the same column flips direction, a new
// column starts ascending.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		return Sort{Field: field, Descending: !s.Descending}
	}
	return Sort{Field: field}
}

// matches reports whether any of the fields contains the search term,
// case-insensitively. An empty term matches everything.
func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
