package mockdata

import (
	"fmt"
	"strings"
	"time"

	"commerce-admin/internal/domain"
)

var transactionStatuses = []string{
	domain.TransactionStatusCompleted,
	domain.TransactionStatusPending,
	domain.TransactionStatusFailed,
}

var transactionPaymentMethods = []string{"credit_card", "paypal", "bank_transfer"}

// Transactions generates a ledger spread across the trailing six calendar
// months so every month bucket in the default chart range has data: 30-50
// sales per month, roughly one refund per ten sales, and 3-8 entries of each
// expense type.
func (g *Generator) Transactions() []domain.Transaction {
	transactions := []domain.Transaction{}
	n := 0

	next := func(txType string, amount float64, date time.Time) domain.Transaction {
		n++
		return domain.Transaction{
			ID:            seqID("transaction", n),
			Type:          txType,
			Amount:        amount,
			Date:          date,
			Description:   fmt.Sprintf("%s transaction", labelWord(txType)),
			PaymentMethod: g.pick(transactionPaymentMethods),
			Status:        g.pick(transactionStatuses),
		}
	}

	start := startOfMonth(g.now).AddDate(0, -5, 0)

	for m := 0; m < 6; m++ {
		month := start.AddDate(0, m, 0)
		daysInMonth := month.AddDate(0, 1, -1).Day()

		dayIn := func() time.Time {
			return month.AddDate(0, 0, g.intn(0, daysInMonth-1))
		}

		sales := g.intn(30, 50)
		for i := 0; i < sales; i++ {
			tx := next(domain.TransactionTypeSale, g.price(100, 1000), dayIn())
			tx.RelatedTo = seqID("order", g.intn(1, OrderCount))
			transactions = append(transactions, tx)
		}

		for i := 0; i < sales/10; i++ {
			tx := next(domain.TransactionTypeRefund, -g.price(50, 350), dayIn())
			tx.RelatedTo = seqID("order", g.intn(1, OrderCount))
			transactions = append(transactions, tx)
		}

		for _, expType := range domain.ExpenseTypes {
			for i := 0; i < g.intn(3, 8); i++ {
				transactions = append(transactions, next(expType, g.price(50, 250), dayIn()))
			}
		}
	}

	return transactions
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func labelWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
