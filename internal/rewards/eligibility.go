package rewards

import (
	"context"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/logger"
)

// FilterEligible reduces a ranked participant list to the recipients that
// qualify for a payout: valid payout address, positive score, rank within
// the paid range, and a payout at or above the dust threshold. Input is
// assumed sorted by rank ascending and output preserves that order. An
// empty result is a valid "nothing to do" outcome, not an error.
func FilterEligible(ctx context.Context, participants []domain.Participant, schedule domain.PayoutSchedule) []domain.EligibleRecipient {
	log := logger.FromContext(ctx)

	eligible := make([]domain.EligibleRecipient, 0, MaxPaidRanks)
	for _, p := range participants {
		if reason, ok := qualify(p, schedule.TotalPool); !ok {
			log.Debug("Participant excluded from payout",
				"address", p.Address, "rank", p.Rank, "reason", string(reason))
			continue
		}
		eligible = append(eligible, domain.EligibleRecipient{
			Address:     p.Address,
			FID:         p.FID,
			DisplayName: p.DisplayName,
			Rank:        p.Rank,
			Amount:      ComputeForRank(p.Rank, schedule.TotalPool),
		})
		if len(eligible) == MaxPaidRanks {
			break
		}
	}
	return eligible
}

func qualify(p domain.Participant, totalPool int64) (domain.ExclusionReason, bool) {
	if p.Rank < 1 || p.Rank > MaxPaidRanks {
		return domain.ExcludedRankTooLow, false
	}
	if p.Score <= 0 {
		return domain.ExcludedZeroScore, false
	}
	if !ValidAddress(p.Address) {
		return domain.ExcludedInvalidAddress, false
	}
	if ComputeForRank(p.Rank, totalPool) < DustThresholdUnits {
		return domain.ExcludedBelowDust, false
	}
	return "", true
}

// AggregateAmount sums the payouts owed to the eligible set; this is the
// amount the funding-pool transfer must move before fan-out begins
func AggregateAmount(recipients []domain.EligibleRecipient) int64 {
	var total int64
	for _, r := range recipients {
		total += r.Amount
	}
	return total
}
