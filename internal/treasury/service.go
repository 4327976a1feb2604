package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/metrics"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
)

// GrantExecutor is the external delegated-grant capability: it derives
// the executable calls a spending grant permits and submits them
type GrantExecutor interface {
	PrepareGrantCalls(ctx context.Context, grant domain.SpendingGrant, amount int64) ([]domain.GrantCall, error)
	ExecuteCall(ctx context.Context, call domain.GrantCall) (string, error)
}

// BalanceReader reads an account's asset balance in smallest units
type BalanceReader interface {
	Balance(ctx context.Context, address, asset string) (int64, error)
}

// Service moves the aggregate payout amount from the authorizer into the
// operator account ahead of fan-out. The transfer must complete in full;
// a partial pool transfer is never sufficient to begin paying recipients.
type Service interface {
	FundPool(ctx context.Context, grant domain.SpendingGrant, amount int64) error
}

type service struct {
	executor GrantExecutor
	balances BalanceReader
	clock    clockwork.Clock
}

// NewService creates a treasury service
func NewService(executor GrantExecutor, balances BalanceReader, clock clockwork.Clock) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &service{executor: executor, balances: balances, clock: clock}
}

// FundPool derives the grant's executable calls, submits them all, then
// verifies the operator balance actually covers the aggregate before
// reporting success. Any constituent failure aborts the whole step. The
// engine does not deduplicate here; retrying a failed run is the
// caller's decision.
func (s *service) FundPool(ctx context.Context, grant domain.SpendingGrant, amount int64) error {
	log := logger.FromContext(ctx)

	start := time.Now()
	defer func() {
		metrics.PoolFundDuration.Observe(time.Since(start).Seconds())
	}()

	if amount <= 0 {
		return fmt.Errorf("%w: non-positive funding amount %d", domain.ErrInvalidInput, amount)
	}
	if grant.CapAmount > 0 && amount > grant.CapAmount {
		return fmt.Errorf("%w: amount %d exceeds grant cap %d", domain.ErrPoolTransfer, amount, grant.CapAmount)
	}

	calls, err := s.executor.PrepareGrantCalls(ctx, grant, amount)
	if err != nil {
		return fmt.Errorf("%w: prepare calls: %v", domain.ErrPoolTransfer, err)
	}
	if len(calls) == 0 {
		return fmt.Errorf("%w: grant produced no executable calls", domain.ErrPoolTransfer)
	}

	log.Info("Funding reward pool",
		"authorizer", grant.Authorizer,
		"operator", grant.Operator,
		"amount", rewards.FormatAmount(amount),
		"calls", len(calls))

	for i, call := range calls {
		ref, err := s.executor.ExecuteCall(ctx, call)
		if err != nil {
			return fmt.Errorf("%w: call %d/%d: %v", domain.ErrPoolTransfer, i+1, len(calls), err)
		}
		log.Info("Pool transfer call executed", "call", i+1, "of", len(calls), "ref", ref)
	}

	if err := s.verifyFunded(ctx, grant, amount); err != nil {
		return err
	}

	log.Info("Reward pool funded", "amount", rewards.FormatAmount(amount))
	return nil
}

// verifyFunded confirms the operator holds at least the aggregate amount.
// The balance read can lag the transfer, so it re-checks a bounded number
// of times before giving up.
func (s *service) verifyFunded(ctx context.Context, grant domain.SpendingGrant, amount int64) error {
	var balance int64
	var err error

	for attempt := 0; attempt < balanceCheckAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %v", domain.ErrPoolTransfer, ctx.Err())
			case <-s.clock.After(balanceCheckInterval):
			}
		}

		balance, err = s.balances.Balance(ctx, grant.Operator, grant.Asset)
		if err == nil && balance >= amount {
			return nil
		}
	}

	if err != nil {
		return fmt.Errorf("%w: balance check: %v", domain.ErrPoolTransfer, err)
	}
	return fmt.Errorf("%w: operator balance %d below required %d", domain.ErrPoolTransfer, balance, amount)
}
