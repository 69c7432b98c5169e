package listview

import (
	"sort"
	"time"

	"commerce-admin/internal/domain"
)

// TransactionQuery filters and orders the transaction ledger.
type TransactionQuery struct {
	Search    string
	Type      string
	Status    string
	DateFrom  time.Time
	DateTo    time.Time
	MinAmount *float64
	MaxAmount *float64
	Sort      Sort
}

// Apply runs search, filters and sort over a copy of transactions.
func (q TransactionQuery) Apply(transactions []domain.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !matches(q.Search, t.ID, t.Description, t.RelatedTo) {
			continue
		}
		if q.Type != "" && t.Type != q.Type {
			continue
		}
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if !q.DateFrom.IsZero() && t.Date.Before(q.DateFrom) {
			continue
		}
		if !q.DateTo.IsZero() && t.Date.After(q.DateTo) {
			continue
		}
		if q.MinAmount != nil && t.Amount < *q.MinAmount {
			continue
		}
		if q.MaxAmount != nil && t.Amount > *q.MaxAmount {
			continue
		}
		result = append(result, t)
	}

	q.sort(result)
	return result
}

func (q TransactionQuery) sort(transactions []domain.Transaction) {
	if q.Sort.Field == "" {
		return
	}
	less := func(a, b domain.Transaction) bool {
		switch q.Sort.Field {
		case "amount":
			return a.Amount < b.Amount
		case "type":
			return a.Type < b.Type
		case "date":
			return a.Date.Before(b.Date)
		default:
			return false
		}
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		if q.Sort.Descending {
			return less(transactions[j], transactions[i])
		}
		return less(transactions[i], transactions[j])
	})
}
