package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the weekly distribution worker
const (
	LogMsgWeeklyDistributionStarting  = "Weekly distribution starting"
	LogMsgWeeklyDistributionCompleted = "Weekly distribution completed"
	LogMsgWeeklyDistributionFailed    = "Weekly distribution failed"
	LogMsgWeeklyDistributionScheduled = "Next weekly distribution scheduled"
)

// Log messages for the history purge job
const (
	LogMsgPurgeStarting  = "Distribution history purge starting"
	LogMsgPurgeCompleted = "Distribution history purge completed"
	LogMsgPurgeFailed    = "Distribution history purge failed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
