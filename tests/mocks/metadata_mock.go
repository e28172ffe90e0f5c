package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/models"
)

// MockMetadataRepository is a testify mock for metadata.Repository
type MockMetadataRepository struct {
	mock.Mock
}

func (m *MockMetadataRepository) GetByMarketID(ctx context.Context, marketID uint64) (*models.MarketMetadata, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MarketMetadata), args.Error(1)
}

func (m *MockMetadataRepository) GetByMarketIDs(ctx context.Context, marketIDs []uint64) ([]models.MarketMetadata, error) {
	args := m.Called(ctx, marketIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarketMetadata), args.Error(1)
}

func (m *MockMetadataRepository) GetResolved(ctx context.Context) ([]models.MarketMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarketMetadata), args.Error(1)
}

func (m *MockMetadataRepository) GetAll(ctx context.Context) ([]models.MarketMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarketMetadata), args.Error(1)
}

func (m *MockMetadataRepository) Upsert(ctx context.Context, meta *models.MarketMetadata) error {
	args := m.Called(ctx, meta)
	return args.Error(0)
}

func (m *MockMetadataRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
