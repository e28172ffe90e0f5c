package metadata

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openpari/parimarket/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new metadata repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetByMarketID returns the metadata record for one market
func (r *repository) GetByMarketID(ctx context.Context, marketID uint64) (*models.MarketMetadata, error) {
	var meta models.MarketMetadata
	err := r.db.WithContext(ctx).
		Where("market_id = ?", marketID).
		First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

// GetByMarketIDs returns metadata records for the given markets
func (r *repository) GetByMarketIDs(ctx context.Context, marketIDs []uint64) ([]models.MarketMetadata, error) {
	var records []models.MarketMetadata
	err := r.db.WithContext(ctx).
		Where("market_id IN ?", marketIDs).
		Find(&records).Error
	return records, err
}

// GetResolved returns all records whose shadow status is resolved
func (r *repository) GetResolved(ctx context.Context) ([]models.MarketMetadata, error) {
	var records []models.MarketMetadata
	err := r.db.WithContext(ctx).
		Where("status = ?", models.MarketStatusResolved).
		Order("market_id ASC").
		Find(&records).Error
	return records, err
}

// GetAll returns every metadata record ordered by market id
func (r *repository) GetAll(ctx context.Context) ([]models.MarketMetadata, error) {
	var records []models.MarketMetadata
	err := r.db.WithContext(ctx).
		Order("market_id ASC").
		Find(&records).Error
	return records, err
}

// Upsert inserts or updates the record keyed by market_id
func (r *repository) Upsert(ctx context.Context, meta *models.MarketMetadata) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "market_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "category", "long_description",
				"status", "winning_outcome", "resolved_by", "resolved_at",
				"updated_at",
			}),
		}).
		Create(meta).Error
}

// DeleteAll removes every metadata record
func (r *repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&models.MarketMetadata{}).Error
}
