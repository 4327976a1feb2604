package rewards

import (
	"math/big"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

var bpsDenom = big.NewInt(BpsDenominator)

// ComputeSchedule computes the full payout schedule for a pool size.
// Pure and deterministic: identical input always yields identical output.
// Each amount is floor(totalPool * bps / 10000) computed in big-integer
// arithmetic so large pools never round through float64. Negative pool
// sizes yield an empty schedule.
func ComputeSchedule(totalPool int64) domain.PayoutSchedule {
	schedule := domain.PayoutSchedule{TotalPool: totalPool}
	if totalPool < 0 {
		return schedule
	}

	schedule.Entries = make([]domain.ScheduleEntry, 0, len(tierTable))
	for _, tier := range tierTable {
		schedule.Entries = append(schedule.Entries, domain.ScheduleEntry{
			Rank:       tier.Rank,
			Amount:     amountForBps(totalPool, tier.PercentageBps),
			Percentage: tier.Percentage(),
			Tier:       tier.Tier,
		})
	}
	return schedule
}

// ComputeForRank returns the payout for one rank. Ranks outside 1..10
// always pay zero. Reconcilable with ComputeSchedule: the same rank and
// pool produce the same amount.
func ComputeForRank(rank int, totalPool int64) int64 {
	tier, ok := TierForRank(rank)
	if !ok || totalPool < 0 {
		return 0
	}
	return amountForBps(totalPool, tier.PercentageBps)
}

// amountForBps computes floor(pool * bps / 10000) without overflow.
// pool*bps can exceed int64 for large pools, so the product stays in
// big.Int until after the division.
func amountForBps(pool, bps int64) int64 {
	product := new(big.Int).Mul(big.NewInt(pool), big.NewInt(bps))
	product.Quo(product, bpsDenom)
	return product.Int64()
}
