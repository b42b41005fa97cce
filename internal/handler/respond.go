package handler

import (
	"errors"
	"net/http"

	"commerce-service/internal/store"
	"commerce-service/internal/tenant"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all HTTP handlers. The tenant id
// is resolved once per request and passed explicitly into every store call.
type Handler struct {
	store    *store.Store
	resolver *tenant.Resolver
}

// New creates the handler set.
func New(s *store.Store, r *tenant.Resolver) *Handler {
	return &Handler{store: s, resolver: r}
}

// Result is the uniform response envelope. Errors are always reported through
// it; raw store errors never reach the caller.
type Result struct {
	Success bool        `json:"success"`
	Error   bool        `json:"error"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, Result{Success: true, Data: data})
}

// fail converts a domain error into the envelope plus a matching HTTP status.
func fail(c echo.Context, err error) error {
	log := logger.FromEcho(c)

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, tenant.ErrUnauthenticated):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, tenant.ErrProvisioningFailed):
		message = tenant.ErrProvisioningFailed.Error()
	case errors.Is(err, store.ErrNotFoundOrForbidden):
		status = http.StatusNotFound
		message = store.ErrNotFoundOrForbidden.Error()
		prometheus.OwnershipDeniedCounter.Inc()
	case errors.Is(err, store.ErrValidationFailed):
		status = http.StatusBadRequest
		message = store.ErrValidationFailed.Error()
	case errors.Is(err, store.ErrInsufficientStock):
		status = http.StatusConflict
		message = store.ErrInsufficientStock.Error()
	case errors.Is(err, store.ErrReferentialConflict):
		status = http.StatusConflict
		message = store.ErrReferentialConflict.Error()
	case errors.Is(err, store.ErrCreationFailed):
		message = store.ErrCreationFailed.Error()
	default:
		log.Error("Unhandled store error", zap.Error(err))
	}

	return c.JSON(status, Result{Success: false, Error: true, Message: message})
}

// tenantID resolves the acting tenant for the request. A tenant claim in the
// token wins; otherwise the tenant is resolved from the identity's email,
// provisioning one on first use.
func (h *Handler) tenantID(c echo.Context) (uint, error) {
	if id, ok := c.Get("tenant_id").(uint); ok && id != 0 {
		return id, nil
	}
	email, _ := c.Get("email").(string)
	return h.resolver.ResolveTenantID(c.Request().Context(), tenant.Identity{Email: email})
}

// listParams reads optional pagination query parameters.
func listParams(c echo.Context) store.ListParams {
	var p store.ListParams
	echo.QueryParamsBinder(c).Int("offset", &p.Offset).Int("limit", &p.Limit)
	return p
}

// pathID reads the numeric id path parameter.
func pathID(c echo.Context) (uint, error) {
	var id uint
	if err := echo.PathParamsBinder(c).Uint("id", &id).BindError(); err != nil || id == 0 {
		return 0, store.ErrValidationFailed
	}
	return id, nil
}
