package rewards

import "github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"

// tierTable is the fixed payout table for ranks 1..10. Shares are basis
// points and sum to exactly 10000 (100.0%). Residual dust from per-rank
// rounding is intentionally not redistributed.
var tierTable = []domain.RewardTier{
	{Rank: 1, PercentageBps: 4000, Tier: domain.TierChampion},
	{Rank: 2, PercentageBps: 1500, Tier: domain.TierElite},
	{Rank: 3, PercentageBps: 1250, Tier: domain.TierElite},
	{Rank: 4, PercentageBps: 800, Tier: domain.TierCompetitive},
	{Rank: 5, PercentageBps: 650, Tier: domain.TierCompetitive},
	{Rank: 6, PercentageBps: 500, Tier: domain.TierCompetitive},
	{Rank: 7, PercentageBps: 400, Tier: domain.TierParticipant},
	{Rank: 8, PercentageBps: 350, Tier: domain.TierParticipant},
	{Rank: 9, PercentageBps: 300, Tier: domain.TierParticipant},
	{Rank: 10, PercentageBps: 250, Tier: domain.TierParticipant},
}

// Tiers returns a copy of the payout tier table, rank ascending
func Tiers() []domain.RewardTier {
	out := make([]domain.RewardTier, len(tierTable))
	copy(out, tierTable)
	return out
}

// TierForRank returns the tier entry for a rank, or false for ranks
// outside 1..10
func TierForRank(rank int) (domain.RewardTier, bool) {
	if rank < 1 || rank > len(tierTable) {
		return domain.RewardTier{}, false
	}
	return tierTable[rank-1], true
}
