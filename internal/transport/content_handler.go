package transport

import (
	"net/http"

	"commerce-admin/internal/listview"
	"commerce-admin/internal/middleware"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler handles HTTP requests for the CMS content table
type ContentHandler struct {
	contentService service.ContentService
	logger         *zap.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{contentService: contentService, logger: logger}
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/content", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Get("/metrics", h.Metrics)
	})
}

func contentQuery(r *http.Request) listview.ContentQuery {
	return listview.ContentQuery{
		Search: r.URL.Query().Get("search"),
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
		Author: r.URL.Query().Get("author"),
		Sort:   querySort(r),
	}
}

// List returns one page of the filtered content table
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.contentService.List(r.Context(), contentQuery(r), queryPage(r))
	if err != nil {
		h.logger.Error("Failed to list content", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list content")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Metrics returns the content summary cards
func (h *ContentHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.contentService.Metrics(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute content metrics", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute content metrics")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, summary)
}
