package metadata

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	feed      Feed
	sanitizer sanitizer.HTMLStripperer
	logger    logger.Logger
}

// NewService creates a new metadata service
func NewService(repo Repository, feed Feed, stripper sanitizer.HTMLStripperer, log logger.Logger) Service {
	return &service{
		repo:      repo,
		feed:      feed,
		sanitizer: stripper,
		logger:    log,
	}
}

// Get returns the metadata record for one market
func (s *service) Get(ctx context.Context, marketID uint64) (*MetadataResponse, error) {
	meta, err := s.repo.GetByMarketID(ctx, marketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToMetadataResponse(meta), nil
}

// GetResolved returns every record whose shadow status is resolved
func (s *service) GetResolved(ctx context.Context) ([]MetadataResponse, error) {
	records, err := s.repo.GetResolved(ctx)
	if err != nil {
		return nil, err
	}
	return ToMetadataResponseList(records), nil
}

// UpsertDraft writes the display fields for a market without touching the
// shadow resolution columns of an already-resolved record.
func (s *service) UpsertDraft(ctx context.Context, req UpsertDraftRequest) (*MetadataResponse, error) {
	if req.MarketID == 0 {
		return nil, models.ErrInvalidMarketID
	}

	meta, err := s.repo.GetByMarketID(ctx, req.MarketID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		meta = &models.MarketMetadata{
			MarketID: req.MarketID,
			Status:   models.MarketStatusOpen,
		}
	}

	meta.Title = s.sanitizer.StripHTML(req.Title)
	meta.Category = s.sanitizer.StripHTML(req.Category)
	meta.LongDescription = s.sanitizer.StripHTML(req.LongDescription)

	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, meta); err != nil {
		return nil, err
	}

	s.publish(ctx, ChangeEvent{MarketID: meta.MarketID, Status: meta.Status, Kind: ChangeKindDraft})

	return ToMetadataResponse(meta), nil
}

// RecordResolution writes the shadow resolution for a market ahead of ledger
// confirmation. The write is one-way: a record already marked resolved is
// rejected with ErrMarketResolved.
func (s *service) RecordResolution(ctx context.Context, marketID uint64, winner models.Outcome, resolvedBy string, at time.Time) (*MetadataResponse, error) {
	if marketID == 0 {
		return nil, models.ErrInvalidMarketID
	}

	meta, err := s.repo.GetByMarketID(ctx, marketID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		meta = &models.MarketMetadata{
			MarketID: marketID,
			Status:   models.MarketStatusOpen,
		}
	}

	if err := meta.MarkResolved(winner, resolvedBy, at); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, meta); err != nil {
		return nil, err
	}

	s.logger.Info("shadow resolution recorded", map[string]interface{}{
		"market_id":   marketID,
		"winner":      winner.String(),
		"resolved_by": resolvedBy,
	})
	s.publish(ctx, ChangeEvent{MarketID: marketID, Status: models.MarketStatusResolved, Kind: ChangeKindResolution})

	return ToMetadataResponse(meta), nil
}

// WipeAll removes every metadata record. Used by the administrative full
// reset before the on-ledger state is cleared.
func (s *service) WipeAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.publish(ctx, ChangeEvent{Kind: ChangeKindWipe})
	return nil
}

func (s *service) publish(ctx context.Context, event ChangeEvent) {
	if s.feed == nil {
		return
	}
	if err := s.feed.Publish(ctx, event); err != nil {
		// the feed is best-effort; listeners re-sync on their own schedule
		s.logger.Error(err, map[string]interface{}{
			"market_id": event.MarketID,
			"kind":      event.Kind,
		})
	}
}
