package handler

import (
	"net/http"
	"time"

	"commerce-service/internal/model"
	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ShippingRequest defines the structure for shipment creation/update requests
type ShippingRequest struct {
	Name              string     `json:"name" validate:"required"`
	Carrier           string     `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
	StockID           uint       `json:"stock_id" validate:"required"`
	ProductID         uint       `json:"product_id" validate:"required"`
	Status            string     `json:"status"`
}

func (r ShippingRequest) input() store.ShippingInput {
	in := store.ShippingInput{
		Name:      r.Name,
		Carrier:   r.Carrier,
		StockID:   r.StockID,
		ProductID: r.ProductID,
		Status:    model.ShippingStatus(r.Status),
	}
	if r.EstimatedDelivery != nil {
		in.EstimatedDelivery = *r.EstimatedDelivery
	}
	return in
}

// ListShippings retrieves all shipments for the acting tenant
func (h *Handler) ListShippings(c echo.Context) error {
	prometheus.RecordEntityOperation("shipping", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	shippings, err := h.store.ListShippings(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, shippings)
}

// GetShipping retrieves a specific shipment by ID
func (h *Handler) GetShipping(c echo.Context) error {
	prometheus.RecordEntityOperation("shipping", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	shipping, err := h.store.GetShipping(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, shipping)
}

// CreateShipping creates a shipment and reserves one unit from the backing
// stock; with no stock left the request fails and nothing is written.
func (h *Handler) CreateShipping(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("shipping", "create")

	var req ShippingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return fail(c, store.ErrValidationFailed)
	}

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	shipping, err := h.store.CreateShipping(c.Request().Context(), tenantID, req.input())
	if err != nil {
		log.Error("Failed to create shipment",
			zap.Uint("stock_id", req.StockID),
			zap.Uint("product_id", req.ProductID),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Shipment created successfully",
		zap.Uint("shipping_id", shipping.ID),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, shipping)
}

// UpdateShipping updates a shipment; changing the stock reference moves the
// reserved unit between the two stock rows atomically.
func (h *Handler) UpdateShipping(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("shipping", "update")

	var req ShippingRequest
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

	shipping, err := h.store.UpdateShipping(c.Request().Context(), tenantID, id, req.input())
	if err != nil {
		log.Error("Failed to update shipment",
			zap.Uint("shipping_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	return respond(c, http.StatusOK, shipping)
}

// DeleteShipping removes a shipment
func (h *Handler) DeleteShipping(c echo.Context) error {
	prometheus.RecordEntityOperation("shipping", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteShipping(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Shipment deleted successfully"})
}
