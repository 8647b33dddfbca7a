package bootstrap

import (
	"context"
	"log/slog"

	"github.com/northshoreshop/storefront/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Services *Services
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Checkout service (drain queued order notifications)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Services != nil {
		if components.Services.Checkout != nil {
			shutdownService(ctx, ServiceNameCheckout, components.Services.Checkout)
		}
		if components.Services.DBPool != nil {
			components.Services.closeDB()
			slog.Info(LogMsgDatabaseClosed)
		}
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownableService is implemented by services that hold background work
type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
