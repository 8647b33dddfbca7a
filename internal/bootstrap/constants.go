package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
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

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingStorefront  = "Starting storefront"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Service Wiring
// =============================================================================

const (
	// NotifyJobTimeout bounds a single webhook delivery
	NotifyJobTimeout = 10 * time.Second
)

const (
	LogMsgOrderLedgerEnabled    = "Order ledger enabled"
	LogMsgOrderLedgerDisabled   = "Order ledger disabled, DB_HOST not set"
	LogMsgMigrationsApplied     = "Database migrations applied"
	LogMsgNotificationsEnabled  = "Order notifications enabled"
	LogMsgNotificationsDisabled = "Order notifications disabled, Discord webhook not configured"
	ErrMsgFailedConnectDatabase = "failed to connect to order ledger database"
	ErrMsgFailedMigrateDatabase = "failed to migrate order ledger database"
	ErrMsgFailedCreateNotifier  = "failed to create order notifier"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgDatabaseClosed       = "Database pool closed"

	// Service names for shutdown logging
	ServiceNameCheckout = "checkout"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
