package distribution

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/metrics"
)

// fanOut submits one independent transfer per eligible recipient from
// the operator account. Recipients carry no cross-recipient dependency:
// one failure never blocks, retries, or rolls back another. Concurrency
// is bounded by a weighted semaphore; there is no ordering guarantee
// between in-flight submissions. Every recipient yields exactly one
// outcome.
func (s *service) fanOut(ctx context.Context, timeframe domain.Timeframe, recipients []domain.EligibleRecipient) []domain.TransferOutcome {
	log := logger.FromContext(ctx)

	outcomes := make([]domain.TransferOutcome, len(recipients))
	sem := semaphore.NewWeighted(s.concurrency)
	var wg sync.WaitGroup

	for i, recipient := range recipients {
		outcome := domain.TransferOutcome{
			Address: recipient.Address,
			Rank:    recipient.Rank,
			Amount:  recipient.Amount,
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled mid fan-out: remaining recipients are
			// recorded as failed, already-submitted transfers stand
			outcome.Status = domain.OutcomeFailed
			outcome.ErrorDetail = err.Error()
			outcomes[i] = outcome
			metrics.PayoutsTotal.WithLabelValues(string(domain.OutcomeFailed)).Inc()
			continue
		}

		wg.Add(1)
		go func(i int, recipient domain.EligibleRecipient, outcome domain.TransferOutcome) {
			defer wg.Done()
			defer sem.Release(1)

			memo := fmt.Sprintf(memoFormat, timeframe, recipient.Rank)
			ref, err := s.submitter.Submit(ctx, s.grant.Operator, recipient.Address, recipient.Amount, memo)
			if err != nil {
				outcome.Status = domain.OutcomeFailed
				outcome.ErrorDetail = err.Error()
				log.Error(LogMsgPayoutFailed,
					"address", recipient.Address, "rank", recipient.Rank,
					"amount", recipient.Amount, "error", err)
			} else {
				outcome.Status = domain.OutcomeSuccess
				outcome.TransferRef = ref
				log.Info(LogMsgPayoutSubmitted,
					"address", recipient.Address, "rank", recipient.Rank,
					"amount", recipient.Amount, "ref", ref)
			}

			metrics.PayoutsTotal.WithLabelValues(string(outcome.Status)).Inc()
			outcomes[i] = outcome
		}(i, recipient, outcome)
	}

	wg.Wait()
	return outcomes
}
