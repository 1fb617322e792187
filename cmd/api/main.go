package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-kart/internal/catalog"
	"menu-kart/internal/config"
	"menu-kart/internal/database"
	"menu-kart/internal/handler"
	"menu-kart/internal/menu"
	"menu-kart/internal/repository"
	"menu-kart/internal/router"
	"menu-kart/internal/service"
	"menu-kart/internal/session"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("catalog_source", cfg.Catalog.Source).Msg("starting menu-kart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, closeProvider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeProvider()

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, serving catalog without cache")
		} else {
			provider = catalog.NewCachedProvider(provider, client, cfg.Redis.CacheTTL(), logger)
			logger.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.CacheTTL()).Msg("catalog cache enabled")
		}
	}

	// Session store with background idle sweeping
	store := session.NewStore(cfg.Session.IdleTimeoutDuration(), logger)
	go store.Run(ctx, cfg.Session.SweepIntervalDuration())

	opts := menu.DefaultOptions()
	opts.MaxQuantity = cfg.Session.MaxQuantity
	opts.ResetQuantityOnAdd = cfg.Session.ResetQuantityOnAdd

	// Initialize services
	catalogService := service.NewCatalogService(provider, logger)
	sessionService := service.NewSessionService(provider, store, opts, logger)

	// Initialize HTTP handlers
	restaurantHandler := handler.NewRestaurantHandler(catalogService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, logger)

	mux := router.New(restaurantHandler, sessionHandler, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Int("open_sessions", store.Len()).Msg("server shutdown completed")
	}

	return nil
}

// newProvider builds the catalog provider selected by CATALOG_SOURCE. The
// returned func releases any resources the provider holds.
func newProvider(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Provider, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		loader := newCatalogLoader(ctx, cfg, logger)
		provider, err := catalog.NewFileSetProvider(ctx, &catalog.FileSetConfig{FilePaths: cfg.Catalog.Files}, loader, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog files: %w", err)
		}
		return provider, noop, nil

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}

		repo := repository.NewCatalogRepository(pool, logger)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to migrate catalog schema: %w", err)
		}
		return repo, pool.Close, nil

	default:
		provider, err := catalog.NewStaticProvider(catalog.SampleRestaurants())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build sample catalog: %w", err)
		}
		logger.Info().Msg("serving bundled sample catalog")
		return provider, noop, nil
	}
}

// newCatalogLoader returns a loader that reads from S3 when enabled and
// falls back to the local file system.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) catalog.Loader {
	fileLoader := catalog.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for catalog files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
