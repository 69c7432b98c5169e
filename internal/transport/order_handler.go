package transport

import (
	"net/http"

	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/middleware"
	"commerce-admin/internal/repository"
	"commerce-admin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderRequest represents the create/update payload for an order. Totals are
// stored as submitted.
type OrderRequest struct {
	Customer        domain.CustomerSummary `json:"customer" validate:"required"`
	Status          string                 `json:"status"`
	Items           []domain.OrderItem     `json:"items" validate:"required,min=1"`
	Subtotal        float64                `json:"subtotal" validate:"gte=0"`
	Tax             float64                `json:"tax" validate:"gte=0"`
	Shipping        float64                `json:"shipping" validate:"gte=0"`
	Total           float64                `json:"total" validate:"gte=0"`
	PaymentMethod   string                 `json:"paymentMethod"`
	ShippingAddress domain.Address         `json:"shippingAddress"`
}

// UpdateOrderStatusRequest represents the status transition payload
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderHandler handles HTTP requests for orders
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, logger: logger}
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	admin := middleware.RequireAdmin(h.logger)

	r.Route("/api/orders", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.With(admin).Post("/", h.Create)
		r.With(admin).Put("/{id}", h.Update)
		r.With(admin).Patch("/{id}/status", h.UpdateStatus)
		r.With(admin).Delete("/{id}", h.Delete)
	})
}

func orderQuery(r *http.Request) listview.OrderQuery {
	return listview.OrderQuery{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		ProductID: r.URL.Query().Get("productId"),
		DateFrom:  queryTime(r, "from"),
		DateTo:    queryTime(r, "to"),
		MinAmount: queryFloat(r, "minAmount"),
		MaxAmount: queryFloat(r, "maxAmount"),
		Sort:      querySort(r),
	}
}

// List returns one page of the filtered order table
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.orderService.List(r.Context(), orderQuery(r), queryPage(r))
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Get returns a single order by id
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == repository.ErrOrderNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to get order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// Create stores a new order
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), orderFromRequest(req))
	if err != nil {
		if err == service.ErrInvalidOrderStatus {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid order status")
			return
		}
		h.logger.Error("Failed to create order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	h.logger.Info("Order created", zap.String("id", order.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// Update replaces an order
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order := orderFromRequest(req)
	order.ID = chi.URLParam(r, "id")

	updated, err := h.orderService.Update(r.Context(), order)
	if err != nil {
		switch err {
		case repository.ErrOrderNotFound:
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		case service.ErrInvalidOrderStatus:
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid order status")
		default:
			h.logger.Error("Failed to update order", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order")
		}
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes an order
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if err == repository.ErrOrderNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to delete order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "order deleted"})
}

// UpdateStatus advances an order through its lifecycle
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch err {
		case repository.ErrOrderNotFound:
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		case service.ErrInvalidOrderStatus:
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid order status")
		default:
			h.logger.Error("Failed to update order status", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update order status")
		}
		return
	}

	h.logger.Info("Order status updated",
		zap.String("id", order.ID),
		zap.String("status", order.Status))
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

func orderFromRequest(req OrderRequest) domain.Order {
	return domain.Order{
		Customer:        req.Customer,
		Status:          req.Status,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		Shipping:        req.Shipping,
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	}
}
