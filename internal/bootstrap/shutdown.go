package bootstrap

import (
	"context"
	"log/slog"
)

type httpServer interface {
	Stop(ctx context.Context) error
}

type gatewaySession interface {
	Stop() error
}

type stoppable interface {
	Stop()
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server          httpServer
	Bot             gatewaySession
	Scheduler       stoppable
	GiveawayWorker  shutdownableService
	GiveawayService shutdownableService
	WorkerPool      stoppable
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. HTTP server and Discord gateway (stop accepting new work)
// 2. Scheduler (no new sweeps)
// 3. Giveaway worker (cancel timers, wait for in-flight endings)
// 4. Giveaway service (wait for background renders)
// 5. Worker pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		if err := components.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotStopFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	// The pool must still be running here so dispatched end jobs can drain
	if components.GiveawayWorker != nil {
		if err := components.GiveawayWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.GiveawayService != nil {
		shutdownService(ctx, ServiceNameGiveaway, components.GiveawayService)
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownService is a helper that shuts down a service and logs any errors.
func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
