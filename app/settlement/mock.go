package settlement

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/models"
)

// MockSweeper is a testify mock for Sweeper
type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) Sweep(ctx context.Context, address string, resolved []models.MarketMetadata) (*models.ClaimBatch, error) {
	args := m.Called(ctx, address, resolved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClaimBatch), args.Error(1)
}

// MockService is a testify mock for Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Claimables(ctx context.Context, address string) (*ClaimBatchResponse, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClaimBatchResponse), args.Error(1)
}

func (m *MockService) SubmitBatchClaim(ctx context.Context, req SubmitClaimRequest) (*SubmitClaimResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SubmitClaimResponse), args.Error(1)
}
