package bootstrap

import "time"

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

const DirPermission = 0o755

// Log rotation settings
const (
	LogMaxSizeMB  = 20
	LogMaxBackups = 9
	LogMaxAgeDays = 30
)

// ==================== Log Messages ====================

const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgStoreOpened            = "Profile store opened"
	LogMsgCatalogReady           = "Bounty catalog ready"
	LogMsgShuttingDownServer     = "Shutting down server..."
	LogMsgServerForcedShutdown   = "Server forced to shutdown"
	LogMsgServerStopped          = "Server stopped"
)
