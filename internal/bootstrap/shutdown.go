package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ChoreQuest_Go/internal/database"
)

// Stopper is a component that shuts down gracefully
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents stops the HTTP server and then closes the database pool.
// The pool is closed even if the server fails to stop in time.
func ShutdownComponents(ctx context.Context, srv Stopper, dbPool database.Pool) {
	slog.Info(LogMsgShuttingDownServer)
	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	} else {
		slog.Info(LogMsgServerStopped)
	}

	slog.Info(LogMsgClosingDatabase)
	dbPool.Close()
}
