package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/models"
)

// MockResolverRepository is a testify mock for admin.Repository
type MockResolverRepository struct {
	mock.Mock
}

func (m *MockResolverRepository) GetActive(ctx context.Context) ([]models.Resolver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resolver), args.Error(1)
}

func (m *MockResolverRepository) GetByAddress(ctx context.Context, address string) (*models.Resolver, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resolver), args.Error(1)
}

func (m *MockResolverRepository) GetAll(ctx context.Context) ([]models.Resolver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Resolver), args.Error(1)
}

func (m *MockResolverRepository) Create(ctx context.Context, resolver *models.Resolver) error {
	args := m.Called(ctx, resolver)
	return args.Error(0)
}

func (m *MockResolverRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

// MockPolicy is a testify mock for admin.Policy
type MockPolicy struct {
	mock.Mock
}

func (m *MockPolicy) IsResolver(ctx context.Context, address string) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockPolicy) Invalidate() {
	m.Called()
}
