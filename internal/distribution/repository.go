package distribution

import (
	"context"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// Repository persists and queries the distribution audit trail
type Repository interface {
	// Record writes one immutable record for a completed (or partially
	// completed) run. Called at most once per run.
	Record(ctx context.Context, record *domain.DistributionRecord) error

	// History returns the most recent records for a timeframe, newest
	// first. Malformed stored entries are skipped, not fatal.
	History(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.DistributionRecord, error)

	// PurgeExpired deletes records past their retention window and
	// returns how many were removed
	PurgeExpired(ctx context.Context) (int64, error)
}

// Submitter is the external transfer-submission primitive: at-most-once
// per call, no implicit retries
type Submitter interface {
	Submit(ctx context.Context, from, to string, amount int64, memo string) (string, error)
}

// RankedReader reads the leaderboard, owned by the external ranking store
type RankedReader interface {
	GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error)
}

// PoolReader reads the configured reward pool size in smallest units
type PoolReader interface {
	GetRewardPoolAmount(ctx context.Context) (int64, error)
}

// Verifier is the authorization gate checked before any funds move
type Verifier interface {
	Verify(ctx context.Context, trigger domain.TriggerType, credential string) error
}

// Notifier delivers best-effort payout notifications. Failures never
// affect the run outcome.
type Notifier interface {
	NotifyPayout(ctx context.Context, recipient domain.EligibleRecipient, timeframe domain.Timeframe) error
}
