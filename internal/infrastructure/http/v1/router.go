// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/http/v1/handlers"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/http/v1/middleware"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres"
	"github.com/matiascamiletti/mc-odata-go/internal/infrastructure/storage/postgres/crm_repo"
	"github.com/matiascamiletti/mc-odata-go/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool.
	Pool *postgres.Pool

	// Logger for request logging.
	Logger *logger.Logger

	// JWTValidator for token validation. Nil leaves the API public.
	JWTValidator middleware.JWTValidator
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.Gzip())
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	base := handlers.NewBaseHandler()
	healthHandler := handlers.NewHealthHandler(base, cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api/v1")
	if cfg.JWTValidator != nil {
		api.Use(middleware.Auth(cfg.JWTValidator))
	}

	contactHandler := handlers.NewResourceHandler(base, crm_repo.NewContactRepo(cfg.Pool))
	companyHandler := handlers.NewResourceHandler(base, crm_repo.NewCompanyRepo(cfg.Pool))

	api.GET("/contacts", contactHandler.List)
	api.GET("/companies", companyHandler.List)

	return router
}
