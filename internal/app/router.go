package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/handler"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	ProxyHandler    *handler.ProxyHandler
	LocationHandler *handler.LocationHandler
	RouteHandler    *handler.RouteHandler
	CompanyHandler  *handler.CompanyHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Mapping-service passthrough.
		v1.GET("/proxy", deps.ProxyHandler.Forward)

		// Location search and resolution.
		v1.GET("/search-location", deps.LocationHandler.Search)
		v1.GET("/location-details", deps.LocationHandler.Details)

		// Route routes.
		routes := v1.Group("/routes")
		{
			routes.POST("", deps.RouteHandler.Create)
			routes.GET("", deps.RouteHandler.GetAll)
			routes.PUT("", deps.RouteHandler.Update)
			routes.DELETE("", deps.RouteHandler.Delete)
		}

		// Read-only company lookups.
		companies := v1.Group("/companies")
		{
			companies.GET("", deps.CompanyHandler.GetAll)
			companies.GET("/:id/offices", deps.CompanyHandler.GetOffices)
		}
	}

	return router
}
