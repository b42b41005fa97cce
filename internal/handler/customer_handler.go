package handler

import (
	"net/http"

	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomerRequest defines the structure for customer creation/update requests
type CustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address"`
}

func (r CustomerRequest) input() store.CustomerInput {
	return store.CustomerInput{Name: r.Name, Email: r.Email, Address: r.Address}
}

// ListCustomers retrieves all customers for the acting tenant
func (h *Handler) ListCustomers(c echo.Context) error {
	prometheus.RecordEntityOperation("customer", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	customers, err := h.store.ListCustomers(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (h *Handler) GetCustomer(c echo.Context) error {
	prometheus.RecordEntityOperation("customer", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	customer, err := h.store.GetCustomer(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, customer)
}

// CreateCustomer adds a new customer
func (h *Handler) CreateCustomer(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("customer", "create")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	customer, err := h.store.CreateCustomer(c.Request().Context(), tenantID, req.input())
	if err != nil {
		log.Error("Failed to create customer",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Customer created successfully",
		zap.Uint("customer_id", customer.ID),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, customer)
}

// UpdateCustomer updates an existing customer
func (h *Handler) UpdateCustomer(c echo.Context) error {
	prometheus.RecordEntityOperation("customer", "update")

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	customer, err := h.store.UpdateCustomer(c.Request().Context(), tenantID, id, req.input())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, customer)
}

// DeleteCustomer removes a customer. Deletion is rejected while orders still
// reference the customer.
func (h *Handler) DeleteCustomer(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("customer", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.store.DeleteCustomer(c.Request().Context(), tenantID, id); err != nil {
		log.Warn("Failed to delete customer",
			zap.Uint("customer_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	return respond(c, http.StatusOK, echo.Map{"message": "Customer deleted successfully"})
}
