package handler

import (
	"net/http"

	"commerce-service/internal/model"
	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SupplierRequest defines the structure for supplier creation/update requests
type SupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

func (r SupplierRequest) model() model.Supplier {
	return model.Supplier{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		Email:         r.Email,
		Phone:         r.Phone,
	}
}

// ListSuppliers retrieves all suppliers for the acting tenant
func (h *Handler) ListSuppliers(c echo.Context) error {
	prometheus.RecordEntityOperation("supplier", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	suppliers, err := h.store.ListSuppliers(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, suppliers)
}

// GetSupplier retrieves a specific supplier by ID
func (h *Handler) GetSupplier(c echo.Context) error {
	prometheus.RecordEntityOperation("supplier", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	supplier, err := h.store.GetSupplier(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, supplier)
}

// CreateSupplier adds a new supplier. Contact details only apply when the
// supplier does not exist yet; resolution never rewrites an existing row.
func (h *Handler) CreateSupplier(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("supplier", "create")

	var req SupplierRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	contact := req.model()
	id, err := h.store.ResolveSupplier(c.Request().Context(), tenantID, req.Name, &contact)
	if err != nil {
		log.Error("Failed to create supplier",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}
	prometheus.RelationResolvedCounter.WithLabelValues("supplier").Inc()
	supplier, err := h.store.GetSupplier(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}

	log.Info("Supplier created",
		zap.Uint("supplier_id", id),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, supplier)
}

// UpdateSupplier updates an existing supplier
func (h *Handler) UpdateSupplier(c echo.Context) error {
	prometheus.RecordEntityOperation("supplier", "update")

	var req SupplierRequest
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
	supplier, err := h.store.UpdateSupplier(c.Request().Context(), tenantID, id, req.model())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, supplier)
}

// DeleteSupplier removes a supplier
func (h *Handler) DeleteSupplier(c echo.Context) error {
	prometheus.RecordEntityOperation("supplier", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteSupplier(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Supplier deleted successfully"})
}
