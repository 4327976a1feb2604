package distribution

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DruxAMB/AroundTheWorld-sub001/internal/domain"
)

// MockVerifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, trigger domain.TriggerType, credential string) error {
	args := m.Called(ctx, trigger, credential)
	return args.Error(0)
}

// MockTreasury
type MockTreasury struct {
	mock.Mock
}

func (m *MockTreasury) FundPool(ctx context.Context, grant domain.SpendingGrant, amount int64) error {
	args := m.Called(ctx, grant, amount)
	return args.Error(0)
}

// MockSubmitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, from, to string, amount int64, memo string) (string, error) {
	args := m.Called(ctx, from, to, amount, memo)
	return args.String(0), args.Error(1)
}

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Record(ctx context.Context, record *domain.DistributionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRepository) History(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.DistributionRecord, error) {
	args := m.Called(ctx, timeframe, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionRecord), args.Error(1)
}

func (m *MockRepository) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRankedReader
type MockRankedReader struct {
	mock.Mock
}

func (m *MockRankedReader) GetRankedParticipants(ctx context.Context, timeframe domain.Timeframe, limit int) ([]domain.Participant, error) {
	args := m.Called(ctx, timeframe, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Participant), args.Error(1)
}

// MockPoolReader
type MockPoolReader struct {
	mock.Mock
}

func (m *MockPoolReader) GetRewardPoolAmount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyPayout(ctx context.Context, recipient domain.EligibleRecipient, timeframe domain.Timeframe) error {
	args := m.Called(ctx, recipient, timeframe)
	return args.Error(0)
}
