package domain

import "time"

// Transaction types. Sale and refund adjust revenue; every other type is an
// expense category.
const (
	TransactionTypeSale         = "sale"
	TransactionTypeRefund       = "refund"
	TransactionTypeSubscription = "subscription"
	TransactionTypeShipping     = "shipping"
	TransactionTypeTax          = "tax"
)

// ExpenseTypes are the non-sale, non-refund transaction types the generator
// spreads across each month.
var ExpenseTypes = []string{
	TransactionTypeShipping,
	TransactionTypeTax,
	TransactionTypeSubscription,
	"marketing",
	"operations",
	"salary",
	"supplies",
}

// Transaction statuses.
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusPending   = "pending"
	TransactionStatusFailed    = "failed"
)

// Transaction is a financial ledger entry. Amount is negative for refunds.
// RelatedTo optionally links back to an order id.
type Transaction struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	RelatedTo     string    `json:"relatedTo,omitempty"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	Status        string    `json:"status"`
}

// IsExpense reports whether the transaction counts toward expenses rather
// than revenue.
func (t Transaction) IsExpense() bool {
	return t.Type != TransactionTypeSale && t.Type != TransactionTypeRefund
}
