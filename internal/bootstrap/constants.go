package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session file
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingChoreQuest  = "Starting ChoreQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Config Sync Messages
// =============================================================================

const (
	LogMsgSyncingItems   = "Syncing items from JSON config..."
	LogMsgItemsSynced    = "Items synced successfully"
	LogMsgItemsUnchanged = "Items config unchanged, sync skipped"
	LogMsgLootTables     = "Loot tables loaded"

	ErrMsgFailedSyncItems      = "failed to sync items to database"
	ErrMsgFailedLoadLootTables = "failed to load loot tables"
	ErrMsgFailedTokenIssuer    = "failed to create token issuer"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout = 10 * time.Second

	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
)
