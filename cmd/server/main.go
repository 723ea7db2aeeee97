package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/swingimport/internal/config"
	"github.com/JonMunkholm/swingimport/internal/core"
	_ "github.com/JonMunkholm/swingimport/internal/core/shapes" // Register all shapes
	"github.com/JonMunkholm/swingimport/internal/logging"
	"github.com/JonMunkholm/swingimport/internal/metrics"
	"github.com/JonMunkholm/swingimport/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	limiter := core.NewParseLimiter(cfg.Parse.MaxConcurrent, cfg.Parse.MaxWaitTime)

	var m *metrics.Manager
	if cfg.Metrics.Enabled {
		m = metrics.NewManager(metrics.WithActiveParses(limiter.ActiveCount))
	}

	opts := []core.Option{
		core.WithMaxFileSize(cfg.Parse.MaxFileSize),
		core.WithLimiter(limiter),
	}
	if m != nil {
		opts = append(opts, core.WithRecorder(m))
	}
	service := core.NewService(opts...)

	slog.Info("shapes registered", "count", core.ShapeCount())
	for _, def := range core.Definitions() {
		slog.Debug("shape", "name", def.Shape.String(), "priority", def.Priority)
	}

	server := web.NewServer(service, cfg, m)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown on signal or listener failure
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for active parses to complete (with timeout)
		if status := service.LimiterStatus(); status.Active > 0 {
			slog.Info("waiting for parses to complete", "active", status.Active)
			if err := service.WaitForParses(shutdownCtx); err != nil {
				slog.Warn("parses did not complete in time", "error", err)
			} else {
				slog.Info("all parses completed")
			}
		}

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
