// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"salesdesk/internal/domain/auth"
	"salesdesk/internal/domain/catalogs/buyer"
	"salesdesk/internal/domain/catalogs/town"
	"salesdesk/internal/domain/sales"
	"salesdesk/internal/infrastructure/http/v1/handlers"
	"salesdesk/internal/infrastructure/http/v1/middleware"
	"salesdesk/internal/infrastructure/storage/postgres"
	"salesdesk/internal/infrastructure/storage/postgres/auth_repo"
	"salesdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"salesdesk/internal/infrastructure/storage/postgres/sale_repo"
	"salesdesk/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool (health checks)
	Pool *postgres.Pool

	// TxManager wraps mutating operations in transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTService issues and validates shop tokens
	JWTService *auth.JWTService

	// Audit records sale mutations; may be nil
	Audit sales.AuditRecorder
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	// Health endpoints (no auth)
	healthHandler := handlers.NewHealthHandler(cfg.Pool.Pool)
	healthHandler.RegisterRoutes(router.Group("/health"))

	// Repositories and services
	townRepo := catalog_repo.NewTownRepo(cfg.TxManager)
	buyerRepo := catalog_repo.NewBuyerRepo(cfg.TxManager)
	saleRepo := sale_repo.NewSaleRepo(cfg.TxManager)
	shopRepo := auth_repo.NewShopRepo(cfg.TxManager)

	townService := town.NewService(townRepo, cfg.TxManager)
	buyerService := buyer.NewService(buyerRepo, townRepo, cfg.TxManager)
	saleService := sales.NewService(saleRepo, cfg.TxManager, cfg.Audit)
	authService := auth.NewService(shopRepo, cfg.JWTService)

	apiV1 := router.Group("/api/v1")
	{
		// Public auth endpoints
		authHandler := handlers.NewAuthHandler(baseHandler, authService)
		authHandler.RegisterRoutes(apiV1.Group("/auth"))

		// Protected endpoints
		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTService))

		handlers.NewTownHandler(baseHandler, townService).
			RegisterRoutes(protected.Group("/towns"))
		handlers.NewBuyerHandler(baseHandler, buyerService).
			RegisterRoutes(protected.Group("/buyers"))
		handlers.NewSaleHandler(baseHandler, saleService).
			RegisterRoutes(protected.Group("/sales"))
	}

	return router
}
