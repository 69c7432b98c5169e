package transport

import (
	"net/http"

	"commerce-admin/internal/metrics"
	"commerce-admin/internal/middleware"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SeedHandler exposes the dataset reset operation
type SeedHandler struct {
	seedService service.SeedService
	logger      *zap.Logger
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seedService service.SeedService, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{seedService: seedService, logger: logger}
}

// RegisterRoutes registers all seed routes
func (h *SeedHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	admin := middleware.RequireAdmin(h.logger)

	r.Route("/api/seed", func(r chi.Router) {
		r.Use(authMiddleware)
		r.With(admin).Post("/reset", h.Reset)
	})
}

// Reset regenerates every collection from the configured seed, discarding
// any edits made through the API.
func (h *SeedHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.seedService.Reset(r.Context()); err != nil {
		h.logger.Error("Failed to reset collections", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reset collections")
		return
	}

	metrics.SeedRuns.Inc()
	h.logger.Info("Collections reset to generated data")
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "collections reset"})
}
