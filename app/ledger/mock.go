package ledger

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/models"
)

// MockClient is a testify mock for Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetMarket(ctx context.Context, marketID uint64) (*models.Market, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockClient) GetMarketCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockClient) GetOutcomeTotal(ctx context.Context, marketID uint64, outcome models.Outcome) (decimal.Decimal, error) {
	args := m.Called(ctx, marketID, outcome)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockClient) GetParticipantCount(ctx context.Context, marketID uint64) (int64, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClient) GetUserBetOutcome(ctx context.Context, marketID uint64, address string) (models.Outcome, error) {
	args := m.Called(ctx, marketID, address)
	return args.Get(0).(models.Outcome), args.Error(1)
}

func (m *MockClient) GetUserBetAmount(ctx context.Context, marketID uint64, address string, outcome models.Outcome) (decimal.Decimal, error) {
	args := m.Called(ctx, marketID, address, outcome)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockClient) CreateMarket(ctx context.Context, description string, endTime int64) (TxHash, error) {
	args := m.Called(ctx, description, endTime)
	return args.Get(0).(TxHash), args.Error(1)
}

func (m *MockClient) PlaceBet(ctx context.Context, marketID uint64, outcome models.Outcome, amount decimal.Decimal) (TxHash, error) {
	args := m.Called(ctx, marketID, outcome, amount)
	return args.Get(0).(TxHash), args.Error(1)
}

func (m *MockClient) ResolveMarket(ctx context.Context, marketID uint64, winner models.Outcome) (TxHash, error) {
	args := m.Called(ctx, marketID, winner)
	return args.Get(0).(TxHash), args.Error(1)
}

func (m *MockClient) ClaimWinnings(ctx context.Context, marketID uint64) (TxHash, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(TxHash), args.Error(1)
}

func (m *MockClient) ClaimWinningsBatch(ctx context.Context, marketIDs []uint64) (TxHash, error) {
	args := m.Called(ctx, marketIDs)
	return args.Get(0).(TxHash), args.Error(1)
}

func (m *MockClient) ResetAll(ctx context.Context) (TxHash, error) {
	args := m.Called(ctx)
	return args.Get(0).(TxHash), args.Error(1)
}
