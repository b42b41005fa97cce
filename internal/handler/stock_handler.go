package handler

import (
	"net/http"

	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StockRequest defines the structure for stock creation/update requests
type StockRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Supplier  string `json:"supplier"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

func (r StockRequest) input() store.StockInput {
	return store.StockInput{ProductID: r.ProductID, Supplier: r.Supplier, Quantity: r.Quantity}
}

// ListStocks retrieves all stock rows for the acting tenant
func (h *Handler) ListStocks(c echo.Context) error {
	prometheus.RecordEntityOperation("stock", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	stocks, err := h.store.ListStocks(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, stocks)
}

// GetStock retrieves a specific stock row by ID
func (h *Handler) GetStock(c echo.Context) error {
	prometheus.RecordEntityOperation("stock", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	stock, err := h.store.GetStock(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, stock)
}

// CreateStock adds a new stock row for a product the tenant owns
func (h *Handler) CreateStock(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("stock", "create")

	var req StockRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	stock, err := h.store.CreateStock(c.Request().Context(), tenantID, req.input())
	if err != nil {
		log.Error("Failed to create stock",
			zap.Uint("product_id", req.ProductID),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Stock created successfully",
		zap.Uint("stock_id", stock.ID),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, stock)
}

// UpdateStock updates an existing stock row
func (h *Handler) UpdateStock(c echo.Context) error {
	prometheus.RecordEntityOperation("stock", "update")

	var req StockRequest
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
	stock, err := h.store.UpdateStock(c.Request().Context(), tenantID, id, req.input())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, stock)
}

// DeleteStock removes a stock row unless shipments still reference it
func (h *Handler) DeleteStock(c echo.Context) error {
	prometheus.RecordEntityOperation("stock", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteStock(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Stock deleted successfully"})
}
