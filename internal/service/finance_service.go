package service

import (
	"context"
	"fmt"
	"time"

	"commerce-admin/internal/analytics"
	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"
)

// FinanceService derives the financial dashboard from the transaction
// ledger.
type FinanceService interface {
	Transactions(ctx context.Context, query listview.TransactionQuery, page int) (listview.Page[domain.Transaction], error)
	RevenueOverTime(ctx context.Context, start, end time.Time) ([]analytics.RevenuePoint, error)
	ProfitMargins(ctx context.Context, start, end time.Time) ([]analytics.MarginPoint, error)
	ExpenseBreakdown(ctx context.Context, start, end time.Time) ([]analytics.DataPoint, error)
	Summary(ctx context.Context, start, end time.Time) (analytics.FinancialSummary, error)
}

type financeService struct {
	transactions repository.TransactionRepository
}

// NewFinanceService creates a new instance of FinanceService
func NewFinanceService(transactions repository.TransactionRepository) FinanceService {
	return &financeService{transactions: transactions}
}

// Transactions applies the query then paginates the filtered ledger.
func (s *financeService) Transactions(ctx context.Context, query listview.TransactionQuery, page int) (listview.Page[domain.Transaction], error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return listview.Page[domain.Transaction]{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return listview.Paginate(query.Apply(transactions), page), nil
}

func (s *financeService) RevenueOverTime(ctx context.Context, start, end time.Time) ([]analytics.RevenuePoint, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return analytics.RevenueOverTime(transactions, start, end), nil
}

func (s *financeService) ProfitMargins(ctx context.Context, start, end time.Time) ([]analytics.MarginPoint, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return analytics.ProfitMarginOverTime(transactions, start, end), nil
}

func (s *financeService) ExpenseBreakdown(ctx context.Context, start, end time.Time) ([]analytics.DataPoint, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return analytics.ExpenseBreakdown(transactions, start, end), nil
}

func (s *financeService) Summary(ctx context.Context, start, end time.Time) (analytics.FinancialSummary, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return analytics.FinancialSummary{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return analytics.Financials(transactions, start, end, time.Now()), nil
}
