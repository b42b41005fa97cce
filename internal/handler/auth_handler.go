package handler

import (
	"net/http"
	"strings"
	"time"

	"commerce-service/internal/model"
	"commerce-service/internal/tenant"
	"commerce-service/pkg/database"
	"commerce-service/pkg/jwtutil"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user account.
func (h *Handler) Register(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse register request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		prometheus.RecordAuthError("incomplete_registration")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())

	user := model.User{
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		Password: string(hashed),
	}
	if err := database.GetDB().Create(&user).Error; err != nil {
		log.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		prometheus.RecordAuthError("registration_failed")
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	log.Info("User registered", zap.String("email", email), zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login authenticates a user and issues a JWT carrying the tenant context.
// A user logging in for the first time has no tenant yet; one is provisioned
// on the spot so the token always carries a tenant id.
func (h *Handler) Login(c echo.Context) error {
	log := logger.FromEcho(c)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := database.GetDB().Where("email = ?", email).First(&user).Error; err != nil {
		log.Error("User not found", zap.String("email", email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Error("Invalid password", zap.String("email", email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tenantID, err := h.resolver.ResolveTenantID(c.Request().Context(), tenant.Identity{
		Email: user.Email,
		Name:  user.Name,
	})
	if err != nil {
		log.Error("Failed to resolve tenant", zap.String("email", email), zap.Error(err))
		return fail(c, err)
	}
	if user.TenantID == nil {
		prometheus.TenantProvisionedCounter.Inc()
	}

	var t model.Tenant
	var tenantName string
	if err := database.GetDB().Select("name").First(&t, tenantID).Error; err == nil {
		tenantName = t.Name
	}

	token, err := jwtutil.GenerateTokenWithTenant(user.Email, user.ID, &tenantID, tenantName, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.ActiveTokensGauge.Inc()

	log.Info("User logged in with tenant context",
		zap.String("email", user.Email),
		zap.Uint("tenant_id", tenantID),
		zap.String("tenant_name", tenantName))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"tenant": map[string]interface{}{
			"id":   tenantID,
			"name": tenantName,
		},
	})
}
