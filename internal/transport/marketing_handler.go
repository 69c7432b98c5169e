package transport

import (
	"net/http"

	"commerce-admin/internal/listview"
	"commerce-admin/internal/middleware"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MarketingHandler handles HTTP requests for the marketing dashboard
type MarketingHandler struct {
	marketingService service.MarketingService
	logger           *zap.Logger
}

// NewMarketingHandler creates a new MarketingHandler
func NewMarketingHandler(marketingService service.MarketingService, logger *zap.Logger) *MarketingHandler {
	return &MarketingHandler{marketingService: marketingService, logger: logger}
}

// RegisterRoutes registers all marketing routes
func (h *MarketingHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/marketing", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/campaigns", h.Campaigns)
		r.Get("/performance", h.Performance)
		r.Get("/top", h.TopByROI)
		r.Get("/channels", h.Channels)
		r.Get("/summary", h.Summary)
	})
}

func campaignQuery(r *http.Request) listview.CampaignQuery {
	return listview.CampaignQuery{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
		Sort:   querySort(r),
	}
}

// Campaigns returns one page of the filtered campaign table
func (h *MarketingHandler) Campaigns(w http.ResponseWriter, r *http.Request) {
	page, err := h.marketingService.Campaigns(r.Context(), campaignQuery(r), queryPage(r))
	if err != nil {
		h.logger.Error("Failed to list campaigns", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Performance returns derived rates for every campaign
func (h *MarketingHandler) Performance(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.marketingService.Performance(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute campaign performance", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute campaign performance")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, metrics)
}

// TopByROI returns the ROI leaderboard
func (h *MarketingHandler) TopByROI(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.marketingService.TopByROI(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute top campaigns", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute top campaigns")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, metrics)
}

// Channels returns the per-channel aggregates
func (h *MarketingHandler) Channels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.marketingService.Channels(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute channel performance", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute channel performance")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, channels)
}

// Summary returns the marketing overview cards
func (h *MarketingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.marketingService.Summary(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute marketing summary", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute marketing summary")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}
