package bootstrap

import (
	"context"

	"github.com/ironvale/bountyhall/internal/logger"
	"github.com/ironvale/bountyhall/internal/profile"
	"github.com/ironvale/bountyhall/internal/server"
	"github.com/ironvale/bountyhall/internal/stream"
	"github.com/ironvale/bountyhall/internal/worker"
)

// ShutdownComponents holds everything that needs a graceful stop.
type ShutdownComponents struct {
	Server *server.Server
	Sweep  *worker.DaySweepWorker
	Hub    *stream.Hub
	Store  profile.Store
}

// GracefulShutdown stops components in dependency order: the HTTP
// server first so no new requests arrive, then the sweep worker and
// stream hub, then the profile store. Errors are logged but never
// abort the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Sweep != nil {
		if err := components.Sweep.Shutdown(ctx); err != nil {
			logger.Error("Day sweep worker shutdown failed", "error", err)
		}
	}

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			logger.Error("Profile store close failed", "error", err)
		}
	}

	logger.Info(LogMsgServerStopped)
}
