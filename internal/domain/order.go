package domain

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

// OrderStatuses lists every order status in display order.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// PaymentMethods accepted at checkout.
var PaymentMethods = []string{
	"credit_card",
	"paypal",
	"bank_transfer",
	"cash_on_delivery",
}

// CustomerSummary is the customer snapshot embedded in an order. The link
// back to the full customer record is by ID only; a dangling reference
// degrades to a placeholder at display time.
type CustomerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductSummary is the product snapshot embedded in an order line.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	SKU   string  `json:"sku"`
}

// OrderItem is a single order line. Total = Quantity * Price.
type OrderItem struct {
	Product  ProductSummary `json:"product"`
	Quantity int            `json:"quantity"`
	Price    float64        `json:"price"`
	Total    float64        `json:"total"`
}

// Order represents a placed order. Total = Subtotal + Tax + Shipping is
// expected but never recomputed or verified. ShippedAt and DeliveredAt stay
// nil until those states are reached.
type Order struct {
	ID              string          `json:"id"`
	Customer        CustomerSummary `json:"customer"`
	Status          string          `json:"status"`
	Items           []OrderItem     `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	PaymentMethod   string          `json:"paymentMethod"`
	ShippingAddress Address         `json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	ShippedAt       *time.Time      `json:"shippedAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
}
