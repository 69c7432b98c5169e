package transport

import (
	"net/http"
	"time"

	"commerce-admin/internal/listview"
	"commerce-admin/internal/middleware"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FinanceHandler handles HTTP requests for the financial dashboard
type FinanceHandler struct {
	financeService service.FinanceService
	logger         *zap.Logger
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(financeService service.FinanceService, logger *zap.Logger) *FinanceHandler {
	return &FinanceHandler{financeService: financeService, logger: logger}
}

// RegisterRoutes registers all finance routes
func (h *FinanceHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/finance", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/transactions", h.Transactions)
		r.Get("/revenue", h.Revenue)
		r.Get("/margins", h.Margins)
		r.Get("/expenses", h.Expenses)
		r.Get("/summary", h.Summary)
	})
}

func transactionQuery(r *http.Request) listview.TransactionQuery {
	return listview.TransactionQuery{
		Search:    r.URL.Query().Get("search"),
		Type:      r.URL.Query().Get("type"),
		Status:    r.URL.Query().Get("status"),
		DateFrom:  queryTime(r, "from"),
		DateTo:    queryTime(r, "to"),
		MinAmount: queryFloat(r, "minAmount"),
		MaxAmount: queryFloat(r, "maxAmount"),
		Sort:      querySort(r),
	}
}

// Transactions returns one page of the filtered ledger
func (h *FinanceHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	page, err := h.financeService.Transactions(r.Context(), transactionQuery(r), queryPage(r))
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list transactions")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Revenue returns the monthly revenue series for the requested range
func (h *FinanceHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r, time.Now())
	points, err := h.financeService.RevenueOverTime(r.Context(), from, to)
	if err != nil {
		h.logger.Error("Failed to compute revenue", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute revenue")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, points)
}

// Margins returns the monthly margin series for the requested range
func (h *FinanceHandler) Margins(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r, time.Now())
	points, err := h.financeService.ProfitMargins(r.Context(), from, to)
	if err != nil {
		h.logger.Error("Failed to compute margins", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute margins")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, points)
}

// Expenses returns the expense breakdown for the requested range
func (h *FinanceHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r, time.Now())
	points, err := h.financeService.ExpenseBreakdown(r.Context(), from, to)
	if err != nil {
		h.logger.Error("Failed to compute expenses", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute expenses")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, points)
}

// Summary returns the financial summary cards for the requested range
func (h *FinanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	from, to := dateRange(r, time.Now())
	summary, err := h.financeService.Summary(r.Context(), from, to)
	if err != nil {
		h.logger.Error("Failed to compute financial summary", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute financial summary")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}
