// Command app runs the storefront HTTP API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/northshoreshop/storefront/internal/bootstrap"
	"github.com/northshoreshop/storefront/internal/config"
	"github.com/northshoreshop/storefront/internal/server"
)

// @title Storefront API
// @version 1.0
// @description Catalog and checkout API for the North Shore storefront.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs, err := bootstrap.InitializeServices(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, server.Dependencies{
		Catalog:        svcs.Catalog,
		Checkout:       svcs.Checkout,
		Formatter:      svcs.Formatter,
		DBPool:         svcs.ReadinessPool(),
		PublicBaseURL:  cfg.PublicBaseURL,
		TrustedProxies: cfg.TrustedProxies,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err, ok := <-serverErr:
		if ok {
			slog.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		Services: svcs,
	})

	if exitCode != 0 {
		logFile.Close()
		os.Exit(exitCode)
	}
}
