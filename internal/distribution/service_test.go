package distribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
	"github.com/DruxAMB/AroundTheWorld-sub001/internal/rewards"
)

const testPool = int64(100_000_000) // 100 USDC

type testHarness struct {
	gate      *MockVerifier
	treasury  *MockTreasury
	submitter *MockSubmitter
	repo      *MockRepository
	ranked    *MockRankedReader
	pools     *MockPoolReader
	notifier  *MockNotifier
	clock     *clockwork.FakeClock
	svc       Service
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		gate:      new(MockVerifier),
		treasury:  new(MockTreasury),
		submitter: new(MockSubmitter),
		repo:      new(MockRepository),
		ranked:    new(MockRankedReader),
		pools:     new(MockPoolReader),
		notifier:  new(MockNotifier),
		clock:     clockwork.NewFakeClock(),
	}
	grant := domain.SpendingGrant{
		Authorizer: "0x1000000000000000000000000000000000000001",
		Operator:   "0x2000000000000000000000000000000000000002",
		Asset:      "0x3000000000000000000000000000000000000003",
		ChainID:    8453,
		CapAmount:  testPool,
		PeriodDays: 7,
	}
	h.svc = NewService(h.gate, h.treasury, h.submitter, h.repo, h.ranked, h.pools, h.notifier, grant, 0, 4, h.clock)
	return h
}

func testParticipants(n int) []domain.Participant {
	addresses := []string{
		"0xaa00000000000000000000000000000000000001",
		"0xaa00000000000000000000000000000000000002",
		"0xaa00000000000000000000000000000000000003",
		"0xaa00000000000000000000000000000000000004",
		"0xaa00000000000000000000000000000000000005",
	}
	out := make([]domain.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Participant{
			Address:     addresses[i],
			DisplayName: "player",
			Rank:        i + 1,
			Score:       int64(100 - i),
		})
	}
	return out
}

func validRequest() domain.DistributionRequest {
	return domain.DistributionRequest{
		Timeframe:   domain.TimeframeWeek,
		TriggerType: domain.TriggerManual,
		Credential:  "1234",
	}
}

func TestDistribute_InvalidInput(t *testing.T) {
	h := newHarness(t)

	_, err := h.svc.Distribute(context.Background(), domain.DistributionRequest{
		Timeframe:   "fortnight",
		TriggerType: domain.TriggerManual,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = h.svc.Distribute(context.Background(), domain.DistributionRequest{
		Timeframe:   domain.TimeframeWeek,
		TriggerType: "webhook",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDistribute_Unauthorized(t *testing.T) {
	h := newHarness(t)
	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(domain.ErrUnauthorized)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, result)
	h.treasury.AssertNotCalled(t, "FundPool")
	h.submitter.AssertNotCalled(t, "Submit")
}

func TestDistribute_AllPayoutsSucceed(t *testing.T) {
	h := newHarness(t)
	participants := testParticipants(3)
	wantTotal := rewards.ComputeForRank(1, testPool) +
		rewards.ComputeForRank(2, testPool) +
		rewards.ComputeForRank(3, testPool)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(participants, nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, wantTotal).Return(nil)
	h.submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("0xref", nil)
	h.repo.On("Record", mock.Anything, mock.MatchedBy(func(r *domain.DistributionRecord) bool {
		return r.Status == domain.RunCompleted && r.RecipientCount == 3 && r.TotalAmount == wantTotal
	})).Return(nil)
	h.notifier.On("NotifyPayout", mock.Anything, mock.Anything, domain.TimeframeWeek).Return(nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.RecipientCount)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
	assert.Equal(t, wantTotal, result.TotalAmount)
	assert.Empty(t, result.RecordingWarning)

	// Notifications fire asynchronously; drain before asserting
	require.NoError(t, h.svc.Shutdown(context.Background()))
	h.notifier.AssertNumberOfCalls(t, "NotifyPayout", 3)
	h.repo.AssertExpectations(t)
}

func TestDistribute_OneFailureDoesNotBlockOthers(t *testing.T) {
	h := newHarness(t)
	participants := testParticipants(5)
	failing := participants[2].Address

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(participants, nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	h.submitter.On("Submit", mock.Anything, mock.Anything, failing, mock.Anything, mock.Anything).Return("", errors.New("insufficient gas"))
	h.submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("0xref", nil)
	h.repo.On("Record", mock.Anything, mock.MatchedBy(func(r *domain.DistributionRecord) bool {
		return r.Status == domain.RunPartial && r.RecipientCount == 5
	})).Return(nil)
	h.notifier.On("NotifyPayout", mock.Anything, mock.Anything, domain.TimeframeWeek).Return(nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 5, result.RecipientCount)
	assert.Equal(t, 4, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Outcomes, 5)

	var failedOutcome *domain.TransferOutcome
	for i := range result.Outcomes {
		if result.Outcomes[i].Status == domain.OutcomeFailed {
			failedOutcome = &result.Outcomes[i]
		}
	}
	require.NotNil(t, failedOutcome)
	assert.Equal(t, failing, failedOutcome.Address)
	assert.Contains(t, failedOutcome.ErrorDetail, "insufficient gas")

	// Failed recipients get no notification
	require.NoError(t, h.svc.Shutdown(context.Background()))
	h.notifier.AssertNumberOfCalls(t, "NotifyPayout", 4)
	h.repo.AssertExpectations(t)
}

func TestDistribute_PoolTransferFails(t *testing.T) {
	h := newHarness(t)
	participants := testParticipants(3)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(participants, nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrPoolTransfer)
	h.repo.On("Record", mock.Anything, mock.MatchedBy(func(r *domain.DistributionRecord) bool {
		return r.Status == domain.RunPoolTransferFailed && r.RecipientCount == 0
	})).Return(nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Empty(t, result.Outcomes)

	// No recipient transfer may happen after a failed pool transfer
	h.submitter.AssertNotCalled(t, "Submit")
	h.repo.AssertExpectations(t)
}

func TestDistribute_NoEligibleRecipients(t *testing.T) {
	h := newHarness(t)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return([]domain.Participant{}, nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.RecipientCount)

	// An empty run funds nothing and records nothing
	h.treasury.AssertNotCalled(t, "FundPool")
	h.repo.AssertNotCalled(t, "Record")
}

func TestDistribute_PoolSizeFallsBackToDefault(t *testing.T) {
	h := newHarness(t)
	grant := domain.SpendingGrant{Operator: "0x2000000000000000000000000000000000000002", CapAmount: testPool}
	h.svc = NewService(h.gate, h.treasury, h.submitter, h.repo, h.ranked, h.pools, h.notifier, grant, testPool, 4, h.clock)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(int64(0), domain.ErrSettingNotFound)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(testParticipants(1), nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, rewards.ComputeForRank(1, testPool)).Return(nil)
	h.submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("0xref", nil)
	h.repo.On("Record", mock.Anything, mock.Anything).Return(nil)
	h.notifier.On("NotifyPayout", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	h.treasury.AssertExpectations(t)
}

func TestDistribute_NoPoolConfigured(t *testing.T) {
	h := newHarness(t)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(int64(0), domain.ErrSettingNotFound)

	_, err := h.svc.Distribute(context.Background(), validRequest())
	assert.Error(t, err)
}

func TestDistribute_RecordingFailureIsAWarning(t *testing.T) {
	h := newHarness(t)

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(testParticipants(2), nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	h.submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("0xref", nil)
	h.repo.On("Record", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))
	h.notifier.On("NotifyPayout", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := h.svc.Distribute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SuccessCount)
	assert.NotEmpty(t, result.RecordingWarning)
}

func TestDistribute_RefusesOverlappingRun(t *testing.T) {
	h := newHarness(t)
	entered := make(chan struct{})
	proceed := make(chan struct{})

	h.gate.On("Verify", mock.Anything, domain.TriggerManual, "1234").Return(nil)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)
	h.ranked.On("GetRankedParticipants", mock.Anything, domain.TimeframeWeek, rewards.MaxPaidRanks).Return(testParticipants(1), nil)
	h.treasury.On("FundPool", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(entered)
		<-proceed
	}).Return(nil)
	h.submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("0xref", nil)
	h.repo.On("Record", mock.Anything, mock.Anything).Return(nil)
	h.notifier.On("NotifyPayout", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	firstDone := make(chan error, 1)
	go func() {
		_, err := h.svc.Distribute(context.Background(), validRequest())
		firstDone <- err
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("first run never reached funding")
	}

	_, err := h.svc.Distribute(context.Background(), validRequest())
	assert.ErrorIs(t, err, domain.ErrRunInProgress)

	close(proceed)
	require.NoError(t, <-firstDone)
}

func TestHistory_LimitClamping(t *testing.T) {
	h := newHarness(t)

	h.repo.On("History", mock.Anything, domain.TimeframeWeek, DefaultHistoryLimit).Return([]domain.DistributionRecord{}, nil).Once()
	_, err := h.svc.History(context.Background(), domain.TimeframeWeek, 0)
	require.NoError(t, err)

	h.repo.On("History", mock.Anything, domain.TimeframeWeek, MaxHistoryLimit).Return([]domain.DistributionRecord{}, nil).Once()
	_, err = h.svc.History(context.Background(), domain.TimeframeWeek, 999)
	require.NoError(t, err)

	h.repo.AssertExpectations(t)
}

func TestHistory_InvalidTimeframe(t *testing.T) {
	h := newHarness(t)
	_, err := h.svc.History(context.Background(), "decade", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSchedulePreview(t *testing.T) {
	h := newHarness(t)
	h.pools.On("GetRewardPoolAmount", mock.Anything).Return(testPool, nil)

	schedule, err := h.svc.SchedulePreview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testPool, schedule.TotalPool)
	assert.Len(t, schedule.Entries, rewards.MaxPaidRanks)
}

func TestPurgeExpired(t *testing.T) {
	h := newHarness(t)
	h.repo.On("PurgeExpired", mock.Anything).Return(int64(7), nil)

	purged, err := h.svc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), purged)
}
