package transport

import (
	"net/http"

	"commerce-admin/internal/middleware"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DashboardHandler handles HTTP requests for the landing page
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// RegisterRoutes registers all dashboard routes
func (h *DashboardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/dashboard", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/overview", h.Overview)
		r.Get("/top-products", h.TopProducts)
		r.Get("/order-status", h.OrderStatus)
		r.Get("/geography", h.Geography)
	})
}

// Overview returns the landing page summary cards
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute overview", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute overview")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, overview)
}

// TopProducts returns the top sellers chart
func (h *DashboardHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	points, err := h.dashboardService.TopProducts(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute top products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute top products")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, points)
}

// OrderStatus returns the status distribution chart
func (h *DashboardHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboardService.OrderStatusDistribution(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute order status distribution", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute order status distribution")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, counts)
}

// Geography returns the sales by state chart
func (h *DashboardHandler) Geography(w http.ResponseWriter, r *http.Request) {
	regions, err := h.dashboardService.GeographicSales(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute geographic sales", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute geographic sales")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, regions)
}
