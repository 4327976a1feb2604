package bootstrap

// Log messages for startup
const (
	LogMsgStartingService     = "Starting atw-rewards"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// Service names for shutdown logging
	ServiceNameDistribution = "distribution"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
	LogMsgWorkerShutdownFailed  = " worker shutdown failed"
)
