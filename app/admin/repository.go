package admin

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new resolver repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetActive returns all active allow-list entries
func (r *repository) GetActive(ctx context.Context) ([]models.Resolver, error) {
	var resolvers []models.Resolver
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&resolvers).Error
	return resolvers, err
}

// GetByAddress returns the entry for an address, case-insensitively
func (r *repository) GetByAddress(ctx context.Context, address string) (*models.Resolver, error) {
	var resolver models.Resolver
	err := r.db.WithContext(ctx).
		Where("LOWER(address) = ?", strings.ToLower(address)).
		First(&resolver).Error
	if err != nil {
		return nil, err
	}
	return &resolver, nil
}

// GetAll returns every allow-list entry
func (r *repository) GetAll(ctx context.Context) ([]models.Resolver, error) {
	var resolvers []models.Resolver
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&resolvers).Error
	return resolvers, err
}

// Create inserts a new allow-list entry
func (r *repository) Create(ctx context.Context, resolver *models.Resolver) error {
	return r.db.WithContext(ctx).Create(resolver).Error
}

// SetActive toggles an entry without deleting its audit trail
func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&models.Resolver{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
