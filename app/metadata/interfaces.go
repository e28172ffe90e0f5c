package metadata

import (
	"context"
	"time"

	"github.com/openpari/parimarket/models"
)

// Repository defines the interface for metadata data access
type Repository interface {
	GetByMarketID(ctx context.Context, marketID uint64) (*models.MarketMetadata, error)
	GetByMarketIDs(ctx context.Context, marketIDs []uint64) ([]models.MarketMetadata, error)
	GetResolved(ctx context.Context) ([]models.MarketMetadata, error)
	GetAll(ctx context.Context) ([]models.MarketMetadata, error)
	Upsert(ctx context.Context, meta *models.MarketMetadata) error
	DeleteAll(ctx context.Context) error
}

// Service defines the interface for metadata business logic
type Service interface {
	Get(ctx context.Context, marketID uint64) (*MetadataResponse, error)
	GetResolved(ctx context.Context) ([]MetadataResponse, error)
	UpsertDraft(ctx context.Context, req UpsertDraftRequest) (*MetadataResponse, error)
	RecordResolution(ctx context.Context, marketID uint64, winner models.Outcome, resolvedBy string, at time.Time) (*MetadataResponse, error)
	WipeAll(ctx context.Context) error
}

// Feed broadcasts metadata change events to interested listeners.
type Feed interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context) (<-chan ChangeEvent, error)
}
