package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bebond/concierge-search/internal/adapters/cache"
	"github.com/bebond/concierge-search/internal/adapters/catalog/memory"
	catalogpg "github.com/bebond/concierge-search/internal/adapters/catalog/postgres"
	"github.com/bebond/concierge-search/internal/api/handlers"
	"github.com/bebond/concierge-search/internal/api/middleware"
	"github.com/bebond/concierge-search/internal/api/routes"
	"github.com/bebond/concierge-search/internal/application/services"
	"github.com/bebond/concierge-search/internal/domain/providers"
	"github.com/bebond/concierge-search/internal/infrastructure/clients/postgres"
	"github.com/bebond/concierge-search/internal/infrastructure/clients/redis"
	"github.com/bebond/concierge-search/internal/infrastructure/observability"
	"github.com/bebond/concierge-search/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Select the catalog backend. The memory backend ships with a seed
	// catalog and needs no external services; postgres reads the synced
	// listings table.
	var catalog providers.CatalogProvider
	var locations providers.LocationProvider
	switch cfg.Search.Backend {
	case config.BackendPostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		log.Info().Msg("PostgreSQL client initialized")

		adapter := catalogpg.NewAdapter(pgClient)
		catalog = adapter
		locations = adapter
	default:
		adapter := memory.NewAdapter(memory.Fixtures())
		catalog = adapter
		locations = adapter
		log.Info().Msg("in-memory catalog initialized")
	}

	// Redis is optional: without it every response is computed fresh.
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			log.Info().Msg("Redis client initialized")
		}
	}

	searchHandler := handlers.NewSearchHandler(catalog, services.NewSearchService(), metrics)
	locationHandler := handlers.NewLocationHandler(locations, services.NewLocationService())
	configHandler := handlers.NewConfigHandler(services.NewConfigService())

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("cache middleware initialized")
	}

	router := routes.NewRouter(searchHandler, locationHandler, configHandler, cacheMiddleware, metrics)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Str("backend", cfg.Search.Backend).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
