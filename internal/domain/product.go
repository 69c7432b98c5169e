package domain

import "time"

// ProductCategories is the fixed category set shared by the generators and
// the list-view filters.
var ProductCategories = []string{
	"Electronics",
	"Clothing",
	"Home & Kitchen",
	"Beauty",
	"Books",
	"Sports",
}

// Product represents a catalog product. Price >= Cost and Stock >= 0 are
// expected by convention but never enforced.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Cost           float64           `json:"cost"`
	Stock          int               `json:"stock"`
	SKU            string            `json:"sku"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	Images         []string          `json:"images"`
	Specifications map[string]string `json:"specifications"`
	Rating         float64           `json:"rating"`
	SalesCount     int               `json:"salesCount"`
}
