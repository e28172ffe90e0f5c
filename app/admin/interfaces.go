package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/openpari/parimarket/models"
)

// Repository defines the interface for resolver allow-list data access
type Repository interface {
	GetActive(ctx context.Context) ([]models.Resolver, error)
	GetByAddress(ctx context.Context, address string) (*models.Resolver, error)
	GetAll(ctx context.Context) ([]models.Resolver, error)
	Create(ctx context.Context, resolver *models.Resolver) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Policy answers whether an address may resolve markets. Implementations
// are safe for concurrent use.
type Policy interface {
	IsResolver(ctx context.Context, address string) (bool, error)
	// Invalidate drops any cached allow-list so the next check re-reads
	// the repository.
	Invalidate()
}

// Service defines the interface for administrative operations
type Service interface {
	ResolveMarket(ctx context.Context, req ResolveRequest) (*ResolveResponse, error)
	ResetAll(ctx context.Context, requestedBy string) (*ResetResponse, error)
	CreateMarket(ctx context.Context, req CreateMarketRequest) (*CreateMarketResponse, error)

	ListResolvers(ctx context.Context) ([]ResolverResponse, error)
	AddResolver(ctx context.Context, req AddResolverRequest) (*ResolverResponse, error)
	SetResolverActive(ctx context.Context, id uuid.UUID, active bool) error
}
