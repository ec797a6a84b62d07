package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/app"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/config"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/handler"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/maps"
	internalRedis "github.com/kimanidrew/OfficeRideBackend-sub001/internal/redis"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/repository/postgres"
	"github.com/kimanidrew/OfficeRideBackend-sub001/internal/service"
)

func main() {
	// Load configuration. The mapping credential is read exactly once here
	// and has no write path afterwards.
	cfg := config.Load()

	if cfg.Maps.APIKey == "" {
		log.Println("WARNING: MAPS_API_KEY is not set; mapping-service calls will fail")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	lockStore := internalRedis.NewLockStore(redisClient)
	lookupCache := internalRedis.NewLookupCache(redisClient)

	// Initialize repositories.
	routeRepo := postgres.NewRouteRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	officeRepo := postgres.NewOfficeRepository(db)

	// Initialize the mapping-service client behind the credential proxy.
	proxy := maps.NewProxy(cfg.Maps.APIKey, cfg.Maps.Timeout)
	mapsClient := maps.NewClient(proxy, cfg.Maps.BaseURL)

	// Initialize services.
	resolver := service.NewLocationResolver(mapsClient)
	routeService := service.NewRouteService(routeRepo, lockStore)

	// Initialize handlers.
	proxyHandler := handler.NewProxyHandler(proxy)
	locationHandler := handler.NewLocationHandler(resolver)
	routeHandler := handler.NewRouteHandler(routeService)
	companyHandler := handler.NewCompanyHandler(companyRepo, officeRepo, lookupCache)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		ProxyHandler:    proxyHandler,
		LocationHandler: locationHandler,
		RouteHandler:    routeHandler,
		CompanyHandler:  companyHandler,
		RedisClient:     redisClient,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
