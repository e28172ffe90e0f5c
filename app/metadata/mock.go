package metadata

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/models"
)

// MockFeed is a testify mock for Feed
type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Publish(ctx context.Context, event ChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockFeed) Subscribe(ctx context.Context) (<-chan ChangeEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan ChangeEvent), args.Error(1)
}

// MockService is a testify mock for Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, marketID uint64) (*MetadataResponse, error) {
	args := m.Called(ctx, marketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MetadataResponse), args.Error(1)
}

func (m *MockService) GetResolved(ctx context.Context) ([]MetadataResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]MetadataResponse), args.Error(1)
}

func (m *MockService) UpsertDraft(ctx context.Context, req UpsertDraftRequest) (*MetadataResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MetadataResponse), args.Error(1)
}

func (m *MockService) RecordResolution(ctx context.Context, marketID uint64, winner models.Outcome, resolvedBy string, at time.Time) (*MetadataResponse, error) {
	args := m.Called(ctx, marketID, winner, resolvedBy, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MetadataResponse), args.Error(1)
}

func (m *MockService) WipeAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
