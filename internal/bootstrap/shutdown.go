package bootstrap

import (
	"context"
	"log/slog"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/distribution"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/scheduler"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/server"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server                   *server.Server
	DistributionService      distribution.Service
	WeeklyDistributionWorker *worker.WeeklyDistributionWorker
	Scheduler                *scheduler.Scheduler
	WorkerPool               *worker.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Background workers and scheduler (cancel pending timers)
// 3. Distribution service (wait for in-flight notification dispatches)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.WeeklyDistributionWorker != nil {
		if err := components.WeeklyDistributionWorker.Shutdown(ctx); err != nil {
			slog.Error("weekly distribution"+LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	shutdownService(ctx, ServiceNameDistribution, components.DistributionService)

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
