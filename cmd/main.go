package main

import (
	"commerce-service/internal/cache"
	"commerce-service/internal/handler"
	mid "commerce-service/internal/middleware"
	"commerce-service/internal/store"
	"commerce-service/internal/tenant"
	"commerce-service/pkg/config"
	"commerce-service/pkg/database"
	"commerce-service/pkg/jwtutil"
	"commerce-service/pkg/logger"
	"commerce-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("commerce-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting commerce-service", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize view cache invalidation
	var invalidator cache.Invalidator = cache.Noop{}
	if appConfig.Redis.Enabled {
		redisInv, err := cache.NewRedisInvalidator(
			appConfig.Redis.Addr, appConfig.Redis.Password, appConfig.Redis.DB, log)
		if err != nil {
			log.Warn("Redis unavailable, view invalidation disabled", zap.Error(err))
		} else {
			invalidator = redisInv
			defer redisInv.Close()
			log.Info("View cache invalidation enabled", zap.String("addr", appConfig.Redis.Addr))
		}
	}

	// Wire the core: tenant resolver + tenant-scoped store + handlers
	resolver := tenant.NewResolver(db, log)
	dataStore := store.New(db, invalidator, log)
	h := handler.New(dataStore, resolver)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Auth endpoints
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)

	// Product API routes
	productAPI := e.Group("/api/products", mid.AuthMiddleware)
	productAPI.GET("", h.ListProducts)
	productAPI.GET("/:id", h.GetProduct)
	productAPI.POST("", h.CreateProduct)
	productAPI.PUT("/:id", h.UpdateProduct)
	productAPI.DELETE("/:id", h.DeleteProduct)

	// Category API routes
	categoryAPI := e.Group("/api/categories", mid.AuthMiddleware)
	categoryAPI.GET("", h.ListCategories)
	categoryAPI.GET("/:id", h.GetCategory)
	categoryAPI.POST("", h.CreateCategory)
	categoryAPI.PUT("/:id", h.UpdateCategory)
	categoryAPI.DELETE("/:id", h.DeleteCategory)

	// Brand API routes
	brandAPI := e.Group("/api/brands", mid.AuthMiddleware)
	brandAPI.GET("", h.ListBrands)
	brandAPI.GET("/:id", h.GetBrand)
	brandAPI.POST("", h.CreateBrand)
	brandAPI.PUT("/:id", h.UpdateBrand)
	brandAPI.DELETE("/:id", h.DeleteBrand)

	// Supplier API routes
	supplierAPI := e.Group("/api/suppliers", mid.AuthMiddleware)
	supplierAPI.GET("", h.ListSuppliers)
	supplierAPI.GET("/:id", h.GetSupplier)
	supplierAPI.POST("", h.CreateSupplier)
	supplierAPI.PUT("/:id", h.UpdateSupplier)
	supplierAPI.DELETE("/:id", h.DeleteSupplier)

	// Customer API routes
	customerAPI := e.Group("/api/customers", mid.AuthMiddleware)
	customerAPI.GET("", h.ListCustomers)
	customerAPI.GET("/:id", h.GetCustomer)
	customerAPI.POST("", h.CreateCustomer)
	customerAPI.PUT("/:id", h.UpdateCustomer)
	customerAPI.DELETE("/:id", h.DeleteCustomer)

	// Order API routes
	orderAPI := e.Group("/api/orders", mid.AuthMiddleware)
	orderAPI.GET("", h.ListOrders)
	orderAPI.GET("/:id", h.GetOrder)
	orderAPI.POST("", h.CreateOrder)
	orderAPI.PUT("/:id", h.UpdateOrder)
	orderAPI.DELETE("/:id", h.DeleteOrder)

	// Stock API routes
	stockAPI := e.Group("/api/stocks", mid.AuthMiddleware)
	stockAPI.GET("", h.ListStocks)
	stockAPI.GET("/:id", h.GetStock)
	stockAPI.POST("", h.CreateStock)
	stockAPI.PUT("/:id", h.UpdateStock)
	stockAPI.DELETE("/:id", h.DeleteStock)

	// Shipping API routes
	shippingAPI := e.Group("/api/shippings", mid.AuthMiddleware)
	shippingAPI.GET("", h.ListShippings)
	shippingAPI.GET("/:id", h.GetShipping)
	shippingAPI.POST("", h.CreateShipping)
	shippingAPI.PUT("/:id", h.UpdateShipping)
	shippingAPI.DELETE("/:id", h.DeleteShipping)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
