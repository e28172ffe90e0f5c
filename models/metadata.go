package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketMetadata is the off-chain cache record for a market, keyed
// one-to-one by the ledger market identifier. Display fields (title,
// category, long description) are denormalized here because the ledger only
// stores a short description. Status and WinningOutcome are the shadow copy
// written optimistically when an admin submits a resolution, ahead of
// ledger confirmation.
type MarketMetadata struct {
	ID              uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MarketID        uint64       `gorm:"uniqueIndex;not null" json:"market_id"`
	Title           string       `gorm:"type:varchar(255)" json:"title"`
	Category        string       `gorm:"type:varchar(100);index" json:"category"`
	LongDescription string       `gorm:"type:text" json:"long_description"`
	Status          MarketStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	WinningOutcome  Outcome      `gorm:"default:0" json:"winning_outcome"`
	ResolvedBy      string       `gorm:"type:varchar(128)" json:"resolved_by"`
	ResolvedAt      *time.Time   `gorm:"type:timestamptz" json:"resolved_at"`
	CreatedAt       time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for MarketMetadata
func (*MarketMetadata) TableName() string {
	return "markets_metadata"
}

func (m *MarketMetadata) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsResolved reports whether the shadow status records a resolution.
func (m *MarketMetadata) IsResolved() bool {
	return m.Status == MarketStatusResolved
}

// MarkResolved writes the shadow resolution. Once the shadow status is
// resolved it is never reverted to open by normal flow; only the
// administrative full reset removes it, by deleting the record.
func (m *MarketMetadata) MarkResolved(winner Outcome, resolvedBy string, at time.Time) error {
	if !winner.Valid() {
		return ErrInvalidOutcome
	}
	if m.IsResolved() {
		return ErrMarketResolved
	}

	m.Status = MarketStatusResolved
	m.WinningOutcome = winner
	m.ResolvedBy = resolvedBy
	m.ResolvedAt = &at
	return nil
}

// Validate performs validation on the metadata record.
func (m *MarketMetadata) Validate() error {
	if m.MarketID == 0 {
		return ErrInvalidMarketID
	}
	if m.Status != MarketStatusOpen && m.Status != MarketStatusResolved {
		return ErrInvalidMarketStatus
	}
	if m.Status == MarketStatusResolved && !m.WinningOutcome.Valid() {
		return ErrInvalidOutcome
	}
	if m.Status == MarketStatusOpen && m.WinningOutcome != OutcomeNone {
		return ErrShadowRevert
	}
	return nil
}
