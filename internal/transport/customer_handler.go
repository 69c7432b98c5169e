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

// CustomerRequest represents the create/update payload for a customer
type CustomerRequest struct {
	Name    string         `json:"name" validate:"required"`
	Email   string         `json:"email" validate:"required,email"`
	Phone   string         `json:"phone"`
	Address domain.Address `json:"address"`
	Status  string         `json:"status"`
}

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *zap.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, logger: logger}
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	admin := middleware.RequireAdmin(h.logger)

	r.Route("/api/customers", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Get("/segments", h.Segments)
		r.Get("/activity", h.Activity)
		r.Get("/{id}", h.Get)
		r.With(admin).Post("/", h.Create)
		r.With(admin).Put("/{id}", h.Update)
		r.With(admin).Delete("/{id}", h.Delete)
	})
}

func customerQuery(r *http.Request) listview.CustomerQuery {
	return listview.CustomerQuery{
		Search:    r.URL.Query().Get("search"),
		Status:    r.URL.Query().Get("status"),
		MinSpent:  queryFloat(r, "minSpent"),
		MaxSpent:  queryFloat(r, "maxSpent"),
		MinOrders: queryInt(r, "minOrders"),
		MaxOrders: queryInt(r, "maxOrders"),
		Sort:      querySort(r),
	}
}

// List returns one page of the filtered customer table
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.customerService.List(r.Context(), customerQuery(r), queryPage(r))
	if err != nil {
		h.logger.Error("Failed to list customers", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Get returns a single customer by id
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
			return
		}
		h.logger.Error("Failed to get customer", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get customer")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, customer)
}

// Create adds a customer
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.customerService.Create(r.Context(), customerFromRequest(req))
	if err != nil {
		h.logger.Error("Failed to create customer", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create customer")
		return
	}

	h.logger.Info("Customer created", zap.String("id", customer.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, customer)
}

// Update replaces a customer
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := customerFromRequest(req)
	customer.ID = chi.URLParam(r, "id")

	updated, err := h.customerService.Update(r.Context(), customer)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
			return
		}
		h.logger.Error("Failed to update customer", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update customer")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, updated)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.customerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if err == repository.ErrCustomerNotFound {
			middleware.RespondWithError(w, http.StatusNotFound, "customer not found")
			return
		}
		h.logger.Error("Failed to delete customer", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

// Segments returns both customer segmentation charts
func (h *CustomerHandler) Segments(w http.ResponseWriter, r *http.Request) {
	segments, err := h.customerService.Segments(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute segments", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute segments")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, segments)
}

// Activity returns the trailing six month activity series
func (h *CustomerHandler) Activity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.customerService.Activity(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute activity", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to compute activity")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, activity)
}

func customerFromRequest(req CustomerRequest) domain.Customer {
	return domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
	}
}
