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

// OrderRequest defines the structure for order creation/update requests.
// Product and customer are referenced by name; unknown names get placeholder
// rows created for the tenant as part of the same operation.
type OrderRequest struct {
	Product      string  `json:"product" validate:"required"`
	ProductPrice float64 `json:"product_price"`
	Customer     string  `json:"customer" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Address      string  `json:"address"`
	Status       string  `json:"status"`
}

func (r OrderRequest) input() store.OrderInput {
	return store.OrderInput{
		Product:      r.Product,
		ProductPrice: r.ProductPrice,
		Customer:     r.Customer,
		Quantity:     r.Quantity,
		Address:      r.Address,
		Status:       model.OrderStatus(r.Status),
	}
}

// ListOrders retrieves all orders for the acting tenant
func (h *Handler) ListOrders(c echo.Context) error {
	prometheus.RecordEntityOperation("order", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	orders, err := h.store.ListOrders(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func (h *Handler) GetOrder(c echo.Context) error {
	prometheus.RecordEntityOperation("order", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	order, err := h.store.GetOrder(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, order)
}

// CreateOrder creates a new order, resolving product and customer names
func (h *Handler) CreateOrder(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("order", "create")

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return fail(c, store.ErrValidationFailed)
	}

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	order, err := h.store.CreateOrder(c.Request().Context(), tenantID, req.input())
	if err != nil {
		log.Error("Failed to create order",
			zap.String("product", req.Product),
			zap.String("customer", req.Customer),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Order created successfully",
		zap.Uint("order_id", order.ID),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, order)
}

// UpdateOrder updates an existing order
func (h *Handler) UpdateOrder(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("order", "update")

	var req OrderRequest
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

	order, err := h.store.UpdateOrder(c.Request().Context(), tenantID, id, req.input())
	if err != nil {
		log.Error("Failed to update order",
			zap.Uint("order_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	return respond(c, http.StatusOK, order)
}

// DeleteOrder removes an order
func (h *Handler) DeleteOrder(c echo.Context) error {
	prometheus.RecordEntityOperation("order", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteOrder(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}
