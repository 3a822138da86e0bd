// Package main is the entry point for the fridgy inventory service.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/fridgy/internal/adapters/http"
	"github.com/jsamuelsen/fridgy/internal/adapters/http/handlers"
	"github.com/jsamuelsen/fridgy/internal/adapters/storage/filestore"
	"github.com/jsamuelsen/fridgy/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen/fridgy/internal/app"
	"github.com/jsamuelsen/fridgy/internal/platform/config"
	"github.com/jsamuelsen/fridgy/internal/platform/logging"
	"github.com/jsamuelsen/fridgy/internal/platform/telemetry"
	"github.com/jsamuelsen/fridgy/internal/ports"
)

// readinessCheckTimeout bounds each dependency check behind /-/ready.
const readinessCheckTimeout = 2 * time.Second

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting fridgy",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("storage", cfg.Storage.Backend),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	store, closeStore, err := openStorage(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	defer func() {
		if closeErr := closeStore.Close(); closeErr != nil {
			logger.Error("storage close error", slog.Any("error", closeErr))
		}
	}()

	healthRegistry := ports.NewHealthRegistry()
	healthRegistry.CheckTimeout = readinessCheckTimeout

	if err := healthRegistry.Register(store); err != nil {
		return fmt.Errorf("registering storage health check: %w", err)
	}

	logger.Debug("readiness checks registered", slog.Any("checks", healthRegistry.Names()))

	inventory := app.NewInventoryService(app.InventoryServiceConfig{
		Storage: store,
		Logger:  logger,
	})

	// A missing data file starts an empty fridge; a rejected one stops startup.
	if err := inventory.Load(ctx); err != nil {
		return err
	}

	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	buildInfo.Storage = store.Name()

	server := http.New(&cfg.Server, logger)

	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:            logger,
		AppConfig:         &cfg.App,
		HealthHandler:     handlers.NewHealthHandler(healthRegistry, buildInfo),
		IngredientHandler: handlers.NewIngredientHandler(inventory),
		Timeout:           cfg.Server.RequestTimeout,
	})

	monitor := app.NewExpiryMonitor(inventory, cfg.App.ExpiryCheckInterval, logger)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)

	serverErr := server.Start()

	g.Go(func() error { return monitor.Run(gctx) })
	g.Go(func() error {
		return waitForShutdown(gctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
	})

	return g.Wait()
}

// inventoryStore is a storage backend that also reports readiness.
type inventoryStore interface {
	ports.InventoryStorage
	ports.HealthChecker
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStorage builds the backend named by cfg.Backend.
func openStorage(ctx context.Context, cfg *config.StorageConfig) (inventoryStore, io.Closer, error) {
	switch cfg.Backend {
	case filestore.FormatJSON, filestore.FormatYAML:
		store, err := filestore.New(cfg.Path, cfg.Backend)
		if err != nil {
			return nil, nil, err
		}

		return store, nopCloser{}, nil

	case "sqlite":
		store, err := sqlstore.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}

		return store, store, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// waitForShutdown blocks until ctx is done (signal or a failed sibling) or the
// server fails. It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		logger.Info("received shutdown signal", slog.Any("cause", context.Cause(ctx)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
