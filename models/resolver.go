package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resolver is one entry of the resolution allow-list: a chain address
// permitted to resolve markets and run the administrative reset. The list
// lives in the database rather than in compiled-in config so it can be
// changed without a redeploy; the policy layer caches it with a short TTL.
type Resolver struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Address   string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"address"`
	Label     string    `gorm:"type:varchar(100)" json:"label"`
	Active    bool      `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Resolver
func (*Resolver) TableName() string {
	return "resolvers"
}

func (r *Resolver) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the resolver entry.
func (r *Resolver) Validate() error {
	if r.Address == "" {
		return ErrInvalidResolverAddress
	}
	return nil
}
