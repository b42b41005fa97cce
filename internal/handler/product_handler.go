package handler

import (
	"net/http"

	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product creation/update requests.
// Category, brand and supplier are referenced by name and resolved to
// tenant-scoped rows, created on demand.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Supplier    string  `json:"supplier"`
}

func (r ProductRequest) input() store.ProductInput {
	return store.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Brand:       r.Brand,
		Supplier:    r.Supplier,
	}
}

// ListProducts handles retrieving the tenant's products
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	products, err := h.store.ListProducts(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		log.Error("Failed to list products", zap.Uint("tenant_id", tenantID), zap.Error(err))
		return fail(c, err)
	}

	log.Info("Products retrieved successfully",
		zap.Int("count", len(products)),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *Handler) GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.store.GetProduct(c.Request().Context(), tenantID, id)
	if err != nil {
		log.Warn("Product not found",
			zap.Uint("product_id", id),
			zap.Uint("tenant_id", tenantID))
		return fail(c, err)
	}

	return respond(c, http.StatusOK, product)
}

// CreateProduct handles creating a new product
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "create")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return fail(c, store.ErrValidationFailed)
	}

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.store.CreateProduct(c.Request().Context(), tenantID, req.input())
	if err != nil {
		log.Error("Failed to create product",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "update")

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
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

	product, err := h.store.UpdateProduct(c.Request().Context(), tenantID, id, req.input())
	if err != nil {
		log.Error("Failed to update product",
			zap.Uint("product_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Product updated successfully",
		zap.Uint("product_id", product.ID),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusOK, product)
}

// DeleteProduct handles deleting a product (soft delete)
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("product", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}

	if err := h.store.DeleteProduct(c.Request().Context(), tenantID, id); err != nil {
		log.Error("Failed to delete product",
			zap.Uint("product_id", id),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}

	log.Info("Product deleted successfully",
		zap.Uint("product_id", id),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
