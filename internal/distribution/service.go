package distribution

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/concurrency"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/metrics"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/treasury"
)

// Service runs reward distributions end to end: authorize, compute the
// schedule, fund the operator pool through the spending grant, fan out
// recipient payouts, record the outcome, and notify winners.
type Service interface {
	Distribute(ctx context.Context, req domain.DistributionRequest) (*domain.DistributionResult, error)
	History(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.DistributionRecord, error)
	SchedulePreview(ctx context.Context) (domain.PayoutSchedule, error)
	PurgeExpired(ctx context.Context) (int64, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	gate        Verifier
	treasury    treasury.Service
	submitter   Submitter
	repo        Repository
	ranked      RankedReader
	pools       PoolReader
	notifier    Notifier
	grant       domain.SpendingGrant
	defaultPool int64
	concurrency int64
	locks       *concurrency.LockManager
	clock       clockwork.Clock
	wg          sync.WaitGroup
}

// NewService creates a distribution service. All collaborators are
// injected so tests can substitute fakes; no client is constructed
// lazily at process scope.
func NewService(
	gate Verifier,
	treasurySvc treasury.Service,
	submitter Submitter,
	repo Repository,
	ranked RankedReader,
	pools PoolReader,
	notifier Notifier,
	grant domain.SpendingGrant,
	defaultPool int64,
	payoutConcurrency int,
	clock clockwork.Clock,
) Service {
	if payoutConcurrency < 1 {
		payoutConcurrency = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{
		gate:        gate,
		treasury:    treasurySvc,
		submitter:   submitter,
		repo:        repo,
		ranked:      ranked,
		pools:       pools,
		notifier:    notifier,
		grant:       grant,
		defaultPool: defaultPool,
		concurrency: int64(payoutConcurrency),
		locks:       concurrency.NewLockManager(),
		clock:       clock,
	}
}

// Distribute executes one run. Failures before funding return a nil
// result and an error: nothing moved, nothing recorded. Once the pool
// transfer has been attempted the caller always gets a result carrying
// per-recipient outcomes; a pool-transfer failure is recorded with
// status pool_transfer_failed to keep the audit trail.
func (s *service) Distribute(ctx context.Context, req domain.DistributionRequest) (*domain.DistributionResult, error) {
	log := logger.FromContext(ctx)

	if !req.Timeframe.Valid() {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgInvalidTimeframe, req.Timeframe)
	}
	if !req.TriggerType.Valid() {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgInvalidTrigger, req.TriggerType)
	}

	// One run per timeframe at a time; overlapping triggers are refused,
	// not queued
	release, ok := s.locks.TryAcquire(runLockPrefix + string(req.Timeframe))
	if !ok {
		return nil, fmt.Errorf("%w: timeframe %s", domain.ErrRunInProgress, req.Timeframe)
	}
	defer release()

	// AUTHORIZING
	if err := s.gate.Verify(ctx, req.TriggerType, req.Credential); err != nil {
		log.Warn(LogMsgRunRejected, "timeframe", req.Timeframe, "trigger", req.TriggerType, "error", err)
		metrics.DistributionRuns.WithLabelValues(metrics.RunStatusRejected).Inc()
		return nil, err
	}

	log.Info(LogMsgRunStarted, "timeframe", req.Timeframe, "trigger", req.TriggerType)

	// COMPUTING_SCHEDULE
	pool, err := s.poolSize(ctx)
	if err != nil {
		return nil, err
	}
	if pool <= 0 {
		return nil, fmt.Errorf("%w: non-positive reward pool %d", domain.ErrInvalidInput, pool)
	}
	schedule := rewards.ComputeSchedule(pool)

	participants, err := s.ranked.GetRankedParticipants(ctx, req.Timeframe, rewards.MaxPaidRanks)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	eligible := rewards.FilterEligible(ctx, participants, schedule)
	if len(eligible) == 0 {
		log.Info(LogMsgNothingToDo, "timeframe", req.Timeframe, "participants", len(participants))
		return &domain.DistributionResult{
			Success:     true,
			Timeframe:   req.Timeframe,
			TriggerType: req.TriggerType,
			Outcomes:    []domain.TransferOutcome{},
		}, nil
	}

	aggregate := rewards.AggregateAmount(eligible)

	// FUNDING_POOL: must fully succeed before any recipient payout
	if err := s.treasury.FundPool(ctx, s.grant, aggregate); err != nil {
		log.Error(LogMsgPoolFundFailed, "timeframe", req.Timeframe, "amount", aggregate, "error", err)
		metrics.DistributionRuns.WithLabelValues(metrics.RunStatusAborted).Inc()

		result := &domain.DistributionResult{
			Success:     false,
			Timeframe:   req.Timeframe,
			TriggerType: req.TriggerType,
			Outcomes:    []domain.TransferOutcome{},
			Error:       err.Error(),
		}
		record := s.newRecord(req, domain.RunPoolTransferFailed, 0, nil)
		if recErr := s.repo.Record(ctx, record); recErr != nil {
			log.Error(LogMsgRecordingFailed, "error", recErr)
			result.RecordingWarning = recErr.Error()
		}
		return result, nil
	}

	// DISTRIBUTING: always proceeds to RECORDING regardless of
	// individual recipient failures
	outcomes := s.fanOut(ctx, req.Timeframe, eligible)

	result := summarize(req, outcomes)

	// RECORDING: best-effort bookkeeping; payouts are irreversible once
	// submitted, so a store failure is a warning, never a rollback
	status := domain.RunCompleted
	if result.FailureCount > 0 {
		status = domain.RunPartial
	}
	record := s.newRecord(req, status, result.TotalAmount, outcomes)
	if err := s.repo.Record(ctx, record); err != nil {
		log.Error(LogMsgRecordingFailed, "error", err)
		result.RecordingWarning = fmt.Sprintf("%s: %v", domain.ErrMsgRecordingFailed, err)
	} else {
		log.Info(LogMsgRunRecorded, "id", record.ID, "status", status)
	}

	metrics.DistributionRuns.WithLabelValues(string(status)).Inc()
	metrics.AmountDistributed.Add(float64(result.TotalAmount))

	// Notifications fire after the authoritative result exists and never
	// gate it
	s.wg.Add(1)
	go s.dispatchNotifications(req.Timeframe, eligible, outcomes)

	log.Info(LogMsgRunComplete,
		"timeframe", req.Timeframe,
		"recipients", result.RecipientCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailureCount,
		"amount", rewards.FormatAmount(result.TotalAmount))

	return result, nil
}

// poolSize reads the configured pool from the settings store, falling
// back to the deploy-time default when no row exists
func (s *service) poolSize(ctx context.Context) (int64, error) {
	pool, err := s.pools.GetRewardPoolAmount(ctx)
	if err == nil {
		return pool, nil
	}
	if s.defaultPool > 0 {
		return s.defaultPool, nil
	}
	return 0, fmt.Errorf("failed to read reward pool size: %w", err)
}

func (s *service) newRecord(req domain.DistributionRequest, status domain.RunStatus, total int64, outcomes []domain.TransferOutcome) *domain.DistributionRecord {
	if outcomes == nil {
		outcomes = []domain.TransferOutcome{}
	}
	now := s.clock.Now().UTC()
	return &domain.DistributionRecord{
		ID:             uuid.New(),
		Timeframe:      req.Timeframe,
		TriggerType:    req.TriggerType,
		Status:         status,
		TotalAmount:    total,
		RecipientCount: len(outcomes),
		Outcomes:       outcomes,
		CreatedAt:      now,
		ExpiresAt:      now.Add(RecordRetention),
	}
}

// summarize folds the per-recipient outcomes into the aggregate result.
// TotalAmount counts only funds actually moved.
func summarize(req domain.DistributionRequest, outcomes []domain.TransferOutcome) *domain.DistributionResult {
	result := &domain.DistributionResult{
		Success:        true,
		Timeframe:      req.Timeframe,
		TriggerType:    req.TriggerType,
		RecipientCount: len(outcomes),
		Outcomes:       outcomes,
	}
	for _, o := range outcomes {
		if o.Status == domain.OutcomeSuccess {
			result.SuccessCount++
			result.TotalAmount += o.Amount
		} else {
			result.FailureCount++
		}
	}
	return result
}

// dispatchNotifications sends one best-effort notification per
// successful payout. Runs detached from the request context because the
// run result is already final.
func (s *service) dispatchNotifications(timeframe domain.Timeframe, eligible []domain.EligibleRecipient, outcomes []domain.TransferOutcome) {
	defer s.wg.Done()
	if s.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	log := logger.FromContext(ctx)

	byAddress := make(map[string]domain.EligibleRecipient, len(eligible))
	for _, r := range eligible {
		byAddress[r.Address] = r
	}

	for _, o := range outcomes {
		if o.Status != domain.OutcomeSuccess {
			continue
		}
		recipient, ok := byAddress[o.Address]
		if !ok {
			continue
		}
		if err := s.notifier.NotifyPayout(ctx, recipient, timeframe); err != nil {
			log.Warn(LogMsgNotifyFailed, "address", o.Address, "error", err)
		}
	}
}

// History returns recent distribution records for a timeframe, newest first
func (s *service) History(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.DistributionRecord, error) {
	if !timeframe.Valid() {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, domain.ErrMsgInvalidTimeframe, timeframe)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.History(ctx, timeframe, limit)
}

// SchedulePreview computes the payout schedule for the currently
// configured pool without moving any funds
func (s *service) SchedulePreview(ctx context.Context) (domain.PayoutSchedule, error) {
	pool, err := s.poolSize(ctx)
	if err != nil {
		return domain.PayoutSchedule{}, err
	}
	return rewards.ComputeSchedule(pool), nil
}

// PurgeExpired removes distribution records past their retention window
func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.PurgeExpired(ctx)
}

// Shutdown waits for in-flight notification dispatches to finish
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
