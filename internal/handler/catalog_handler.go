package handler

import (
	"net/http"

	"commerce-service/internal/store"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NameRequest is the request body for the simple named lookup entities.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCategories retrieves all categories for the acting tenant
func (h *Handler) ListCategories(c echo.Context) error {
	prometheus.RecordEntityOperation("category", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	categories, err := h.store.ListCategories(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func (h *Handler) GetCategory(c echo.Context) error {
	prometheus.RecordEntityOperation("category", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	category, err := h.store.GetCategory(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, category)
}

// CreateCategory adds a new category, reusing an existing one with the same
// name so explicit creation and implicit resolution stay consistent.
func (h *Handler) CreateCategory(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("category", "create")

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := h.store.ResolveCategory(c.Request().Context(), tenantID, req.Name)
	if err != nil {
		log.Error("Failed to create category",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}
	prometheus.RelationResolvedCounter.WithLabelValues("category").Inc()
	category, err := h.store.GetCategory(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}

	log.Info("Category created",
		zap.Uint("category_id", id),
		zap.Uint("tenant_id", tenantID))
	return respond(c, http.StatusCreated, category)
}

// UpdateCategory renames a category
func (h *Handler) UpdateCategory(c echo.Context) error {
	prometheus.RecordEntityOperation("category", "update")

	var req NameRequest
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
	category, err := h.store.RenameCategory(c.Request().Context(), tenantID, id, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, category)
}

// DeleteCategory removes a category
func (h *Handler) DeleteCategory(c echo.Context) error {
	prometheus.RecordEntityOperation("category", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteCategory(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}

// ListBrands retrieves all brands for the acting tenant
func (h *Handler) ListBrands(c echo.Context) error {
	prometheus.RecordEntityOperation("brand", "list")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	brands, err := h.store.ListBrands(c.Request().Context(), tenantID, listParams(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, brands)
}

// GetBrand retrieves a specific brand by ID
func (h *Handler) GetBrand(c echo.Context) error {
	prometheus.RecordEntityOperation("brand", "get")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	brand, err := h.store.GetBrand(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, brand)
}

// CreateBrand adds a new brand
func (h *Handler) CreateBrand(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("brand", "create")

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, store.ErrValidationFailed)
	}
	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := h.store.ResolveBrand(c.Request().Context(), tenantID, req.Name)
	if err != nil {
		log.Error("Failed to create brand",
			zap.String("name", req.Name),
			zap.Uint("tenant_id", tenantID),
			zap.Error(err))
		return fail(c, err)
	}
	prometheus.RelationResolvedCounter.WithLabelValues("brand").Inc()
	brand, err := h.store.GetBrand(c.Request().Context(), tenantID, id)
	if err != nil {
		return fail(c, err)
	}

	return respond(c, http.StatusCreated, brand)
}

// UpdateBrand renames a brand
func (h *Handler) UpdateBrand(c echo.Context) error {
	prometheus.RecordEntityOperation("brand", "update")

	var req NameRequest
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
	brand, err := h.store.RenameBrand(c.Request().Context(), tenantID, id, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, brand)
}

// DeleteBrand removes a brand
func (h *Handler) DeleteBrand(c echo.Context) error {
	prometheus.RecordEntityOperation("brand", "delete")

	tenantID, err := h.tenantID(c)
	if err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.store.DeleteBrand(c.Request().Context(), tenantID, id); err != nil {
		return fail(c, err)
	}
	return respond(c, http.StatusOK, echo.Map{"message": "Brand deleted successfully"})
}
