package metadata

import (
	"time"

	"github.com/openpari/parimarket/models"
)

// UpsertDraftRequest carries the editable display fields for a market.
type UpsertDraftRequest struct {
	MarketID        uint64 `json:"market_id" binding:"required,min=1"`
	Title           string `json:"title" binding:"required,max=255"`
	Category        string `json:"category" binding:"max=100"`
	LongDescription string `json:"long_description"`
}

// MetadataResponse is the API representation of a metadata record.
type MetadataResponse struct {
	MarketID        uint64              `json:"market_id"`
	Title           string              `json:"title"`
	Category        string              `json:"category"`
	LongDescription string              `json:"long_description,omitempty"`
	Status          models.MarketStatus `json:"status"`
	WinningOutcome  models.Outcome      `json:"winning_outcome"`
	ResolvedBy      string              `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time          `json:"resolved_at,omitempty"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ChangeEvent is published on the metadata feed whenever a record changes.
type ChangeEvent struct {
	MarketID uint64              `json:"market_id"`
	Status   models.MarketStatus `json:"status"`
	Kind     string              `json:"kind"` // "draft", "resolution", "wipe"
}

const (
	ChangeKindDraft      = "draft"
	ChangeKindResolution = "resolution"
	ChangeKindWipe       = "wipe"
)

// ToMetadataResponse converts a model to its API representation
func ToMetadataResponse(m *models.MarketMetadata) *MetadataResponse {
	return &MetadataResponse{
		MarketID:        m.MarketID,
		Title:           m.Title,
		Category:        m.Category,
		LongDescription: m.LongDescription,
		Status:          m.Status,
		WinningOutcome:  m.WinningOutcome,
		ResolvedBy:      m.ResolvedBy,
		ResolvedAt:      m.ResolvedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToMetadataResponseList converts a slice of models to API representations
func ToMetadataResponseList(records []models.MarketMetadata) []MetadataResponse {
	out := make([]MetadataResponse, len(records))
	for i := range records {
		out[i] = *ToMetadataResponse(&records[i])
	}
	return out
}
