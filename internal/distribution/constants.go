package distribution

import "time"

const (
	// RecordRetention is how long a distribution record is kept before
	// the purge job may expire it
	RecordRetention = 30 * 24 * time.Hour

	// DefaultHistoryLimit bounds history queries when the caller does
	// not specify one
	DefaultHistoryLimit = 10

	// MaxHistoryLimit caps history queries regardless of the caller
	MaxHistoryLimit = 50

	// notifyTimeout bounds the best-effort notification dispatch that
	// runs after a distribution completes
	notifyTimeout = 30 * time.Second

	// memoFormat tags every recipient transfer: timeframe then rank
	memoFormat = "AroundTheWorld %s rewards - rank %d"

	// runLockPrefix namespaces the per-timeframe run locks
	runLockPrefix = "distribution:"
)

// Log message constants
const (
	LogMsgRunStarted      = "Distribution run started"
	LogMsgRunRejected     = "Distribution run rejected"
	LogMsgNothingToDo     = "No eligible recipients, nothing to distribute"
	LogMsgPoolFundFailed  = "Pool funding failed, run aborted"
	LogMsgRunRecorded     = "Distribution recorded"
	LogMsgRecordingFailed = "Failed to record distribution"
	LogMsgRunComplete     = "Distribution run complete"
	LogMsgPayoutSubmitted = "Payout submitted"
	LogMsgPayoutFailed    = "Payout failed"
	LogMsgNotifyFailed    = "Payout notification failed"
	LogMsgPurgedRecords   = "Purged expired distribution records"
	LogMsgPurgeFailed     = "Failed to purge expired distribution records"
)
