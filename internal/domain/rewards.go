package domain

import (
	"time"

	"github.com/google/uuid"
)

// Timeframe is a ranking window over which scores are aggregated
type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeAllTime Timeframe = "all-time"
)

// Valid reports whether the timeframe is one of the supported windows
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeWeek, TimeframeMonth, TimeframeAllTime:
		return true
	}
	return false
}

// TriggerType identifies how a distribution run was initiated
type TriggerType string

const (
	TriggerManual    TriggerType = "manual"
	TriggerAutomated TriggerType = "automated"
)

// Valid reports whether the trigger type is supported
func (t TriggerType) Valid() bool {
	return t == TriggerManual || t == TriggerAutomated
}

// TierLabel is the qualitative payout bracket mapped from rank
type TierLabel string

const (
	TierChampion    TierLabel = "champion"
	TierElite       TierLabel = "elite"
	TierCompetitive TierLabel = "competitive"
	TierParticipant TierLabel = "participant"
)

// RewardTier maps a leaderboard rank to its payout share.
// PercentageBps is the share in basis points (12.5% == 1250) so schedule
// math never touches floating point.
type RewardTier struct {
	Rank          int       `json:"rank"`
	PercentageBps int64     `json:"percentage_bps"`
	Tier          TierLabel `json:"tier"`
}

// Percentage returns the human-readable share (e.g. 12.5)
func (t RewardTier) Percentage() float64 {
	return float64(t.PercentageBps) / 100
}

// ScheduleEntry is one rank's computed payout within a schedule
type ScheduleEntry struct {
	Rank       int       `json:"rank"`
	Amount     int64     `json:"amount"`
	Percentage float64   `json:"percentage"`
	Tier       TierLabel `json:"tier"`
}

// PayoutSchedule is the full computed payout table for a pool size.
// Entries are ordered by rank ascending and never mutated after creation.
type PayoutSchedule struct {
	TotalPool int64           `json:"total_pool"`
	Entries   []ScheduleEntry `json:"entries"`
}

// Participant is a ranked leaderboard entry, owned by the ranking store
// and read-only to the distribution engine.
type Participant struct {
	Address     string `json:"address"`
	FID         int64  `json:"fid,omitempty"`
	DisplayName string `json:"display_name"`
	Rank        int    `json:"rank"`
	Score       int64  `json:"score"`
}

// ExclusionReason explains why a ranked participant was not paid
type ExclusionReason string

const (
	ExcludedInvalidAddress ExclusionReason = "invalid_address"
	ExcludedZeroScore      ExclusionReason = "zero_score"
	ExcludedRankTooLow     ExclusionReason = "rank_too_low"
	ExcludedBelowDust      ExclusionReason = "below_dust_threshold"
)

// EligibleRecipient is a participant that qualified for a payout.
// It exists only for the duration of one distribution run.
type EligibleRecipient struct {
	Address     string `json:"address"`
	FID         int64  `json:"fid,omitempty"`
	DisplayName string `json:"display_name"`
	Rank        int    `json:"rank"`
	Amount      int64  `json:"amount"`
}

// OutcomeStatus is the terminal state of one recipient transfer attempt
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
)

// TransferOutcome is the immutable result of one attempted recipient
// transfer. A failed attempt is terminal for the run; there is no in-run
// retry.
type TransferOutcome struct {
	Address     string        `json:"address"`
	Rank        int           `json:"rank"`
	Amount      int64         `json:"amount"`
	Status      OutcomeStatus `json:"status"`
	TransferRef string        `json:"transfer_ref,omitempty"`
	ErrorDetail string        `json:"error_detail,omitempty"`
}

// RunStatus is the terminal state of a distribution run as persisted
type RunStatus string

const (
	RunCompleted          RunStatus = "completed"
	RunPartial            RunStatus = "partial"
	RunPoolTransferFailed RunStatus = "pool_transfer_failed"
)

// DistributionRecord is the audit trail for one distribution run.
// Written at most once per run and never mutated afterward.
type DistributionRecord struct {
	ID             uuid.UUID         `json:"id"`
	Timeframe      Timeframe         `json:"timeframe"`
	TriggerType    TriggerType       `json:"trigger_type"`
	Status         RunStatus         `json:"status"`
	TotalAmount    int64             `json:"total_amount"`
	RecipientCount int               `json:"recipient_count"`
	Outcomes       []TransferOutcome `json:"outcomes"`
	CreatedAt      time.Time         `json:"created_at"`
	ExpiresAt      time.Time         `json:"expires_at"`
}

// SpendingGrant is a capped, time-boxed permission letting the operator
// account move funds out of the authorizer's account. Supplied externally;
// the engine only consumes it and never mutates or invents one.
type SpendingGrant struct {
	Authorizer string `json:"authorizer"`
	Operator   string `json:"operator"`
	Asset      string `json:"asset"`
	ChainID    int64  `json:"chain_id"`
	CapAmount  int64  `json:"cap_amount"`
	PeriodDays int    `json:"period_days"`
	Signature  string `json:"signature"`
}

// GrantCall is one executable call derived from a spending grant by the
// external delegated-grant capability.
type GrantCall struct {
	To    string `json:"to"`
	Data  string `json:"data"`
	Value int64  `json:"value"`
}

// DistributionRequest is the validated trigger payload for one run
type DistributionRequest struct {
	Timeframe   Timeframe   `json:"timeframe"`
	TriggerType TriggerType `json:"trigger_type"`
	Credential  string      `json:"credential"`
}

// DistributionResult is the aggregate outcome of one run returned to the
// caller. Once funding has succeeded the caller always receives per
// recipient outcomes, never a bare opaque failure.
type DistributionResult struct {
	Success          bool              `json:"success"`
	Timeframe        Timeframe         `json:"timeframe"`
	TriggerType      TriggerType       `json:"trigger_type"`
	TotalAmount      int64             `json:"total_amount"`
	RecipientCount   int               `json:"recipient_count"`
	SuccessCount     int               `json:"success_count"`
	FailureCount     int               `json:"failure_count"`
	Outcomes         []TransferOutcome `json:"outcomes"`
	Error            string            `json:"error,omitempty"`
	RecordingWarning string            `json:"recording_warning,omitempty"`
}
