package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/openpari/parimarket/models"
)

// ResolveRequest asks for a market resolution.
type ResolveRequest struct {
	MarketID uint64         `json:"market_id" binding:"required,min=1"`
	Winner   models.Outcome `json:"winner" binding:"required"`

	// ResolvedBy is filled from the authenticated resolver, never from
	// the request body.
	ResolvedBy string `json:"-"`
}

// ResolveResponse reports the shadow write and the broadcast transaction.
type ResolveResponse struct {
	MarketID   uint64         `json:"market_id"`
	Winner     models.Outcome `json:"winner"`
	ResolvedBy string         `json:"resolved_by"`
	ResolvedAt time.Time      `json:"resolved_at"`
	TxHash     string         `json:"tx_hash"`
}

// ResetResponse reports the administrative full reset.
type ResetResponse struct {
	TxHash      string    `json:"tx_hash"`
	RequestedBy string    `json:"requested_by"`
	ResetAt     time.Time `json:"reset_at"`
}

// CreateMarketRequest asks for a new market on the ledger plus its
// off-chain display record.
type CreateMarketRequest struct {
	Description     string `json:"description" binding:"required,max=255"`
	EndTime         int64  `json:"end_time" binding:"required"`
	Title           string `json:"title" binding:"required,max=255"`
	Category        string `json:"category" binding:"max=100"`
	LongDescription string `json:"long_description"`
}

// CreateMarketResponse reports the broadcast transaction and the market id
// the ledger will assign to it.
type CreateMarketResponse struct {
	// PredictedMarketID is the sequential id the contract assigns next;
	// it is read before broadcast and is only wrong if a concurrent
	// creation lands first.
	PredictedMarketID uint64 `json:"predicted_market_id"`
	TxHash            string `json:"tx_hash"`
}

// AddResolverRequest adds an address to the resolution allow-list.
type AddResolverRequest struct {
	Address string `json:"address" binding:"required,max=128"`
	Label   string `json:"label" binding:"max=100"`
}

// ResolverResponse is the API representation of an allow-list entry.
type ResolverResponse struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	Label     string    `json:"label"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResolverResponse converts a model to its API representation
func ToResolverResponse(r *models.Resolver) *ResolverResponse {
	return &ResolverResponse{
		ID:        r.ID,
		Address:   r.Address,
		Label:     r.Label,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

// ToResolverResponseList converts a slice of models to API representations
func ToResolverResponseList(resolvers []models.Resolver) []ResolverResponse {
	out := make([]ResolverResponse, len(resolvers))
	for i := range resolvers {
		out[i] = *ToResolverResponse(&resolvers[i])
	}
	return out
}
