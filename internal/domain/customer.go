package domain

import "time"

// Customer statuses.
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

// Address is a postal address embedded in customers and orders.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Customer represents a shopper with cumulative purchase totals.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
	LastPurchase time.Time `json:"lastPurchase"`
	TotalSpent   float64   `json:"totalSpent"`
	TotalOrders  int       `json:"totalOrders"`
	Status       string    `json:"status"`
}
