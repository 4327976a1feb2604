package rewards_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
)

const testPool = int64(100_000_000) // 100 USDC

func rankedParticipant(rank int) domain.Participant {
	addresses := []string{
		"0x1000000000000000000000000000000000000001",
		"0x2000000000000000000000000000000000000002",
		"0x3000000000000000000000000000000000000003",
		"0x4000000000000000000000000000000000000004",
		"0x5000000000000000000000000000000000000005",
		"0x6000000000000000000000000000000000000006",
		"0x7000000000000000000000000000000000000007",
		"0x8000000000000000000000000000000000000008",
		"0x9000000000000000000000000000000000000009",
		"0xa00000000000000000000000000000000000000a",
		"0xb00000000000000000000000000000000000000b",
	}
	return domain.Participant{
		Address: addresses[(rank-1)%len(addresses)],
		Rank:    rank,
		Score:   int64(1000 - rank),
	}
}

func TestFilterEligible_AllQualify(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	participants := make([]domain.Participant, 0, 10)
	for rank := 1; rank <= 10; rank++ {
		participants = append(participants, rankedParticipant(rank))
	}

	eligible := rewards.FilterEligible(context.Background(), participants, schedule)

	require.Len(t, eligible, 10)
	for i, r := range eligible {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, rewards.ComputeForRank(i+1, testPool), r.Amount)
	}
}

func TestFilterEligible_ExcludesZeroScore(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	p1 := rankedParticipant(1)
	p2 := rankedParticipant(2)
	p2.Score = 0

	eligible := rewards.FilterEligible(context.Background(), []domain.Participant{p1, p2}, schedule)

	require.Len(t, eligible, 1)
	assert.Equal(t, 1, eligible[0].Rank)
}

func TestFilterEligible_ExcludesInvalidAddress(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	p1 := rankedParticipant(1)
	p1.Address = "not-an-address"
	p2 := rankedParticipant(2)

	eligible := rewards.FilterEligible(context.Background(), []domain.Participant{p1, p2}, schedule)

	// Rank 1's share is not reassigned; rank 2 keeps rank 2's amount
	require.Len(t, eligible, 1)
	assert.Equal(t, 2, eligible[0].Rank)
	assert.Equal(t, rewards.ComputeForRank(2, testPool), eligible[0].Amount)
}

func TestFilterEligible_ExcludesRankOutsidePaidRange(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	p := rankedParticipant(1)
	p.Rank = 11

	eligible := rewards.FilterEligible(context.Background(), []domain.Participant{p}, schedule)
	assert.Empty(t, eligible)
}

func TestFilterEligible_ExcludesBelowDust(t *testing.T) {
	// Pool of 1000 units: rank 10 gets 25 units, under the 100-unit
	// dust threshold; rank 1 gets 400 and stays in
	schedule := rewards.ComputeSchedule(1000)
	p1 := rankedParticipant(1)
	p10 := rankedParticipant(10)

	eligible := rewards.FilterEligible(context.Background(), []domain.Participant{p1, p10}, schedule)

	require.Len(t, eligible, 1)
	assert.Equal(t, 1, eligible[0].Rank)
}

func TestFilterEligible_EmptyInput(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	eligible := rewards.FilterEligible(context.Background(), nil, schedule)
	assert.Empty(t, eligible)
}

func TestFilterEligible_CapsAtPaidRanks(t *testing.T) {
	schedule := rewards.ComputeSchedule(testPool)
	participants := make([]domain.Participant, 0, 11)
	for rank := 1; rank <= 11; rank++ {
		participants = append(participants, rankedParticipant(rank))
	}

	eligible := rewards.FilterEligible(context.Background(), participants, schedule)
	assert.Len(t, eligible, rewards.MaxPaidRanks)
}

func TestAggregateAmount(t *testing.T) {
	recipients := []domain.EligibleRecipient{
		{Rank: 1, Amount: 400},
		{Rank: 2, Amount: 150},
		{Rank: 3, Amount: 125},
	}
	assert.Equal(t, int64(675), rewards.AggregateAmount(recipients))
	assert.Equal(t, int64(0), rewards.AggregateAmount(nil))
}
