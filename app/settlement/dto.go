package settlement

import (
	"github.com/shopspring/decimal"

	"github.com/openpari/parimarket/models"
)

// ClaimBatchResponse is the result of a claimables sweep.
type ClaimBatchResponse struct {
	Address    string                  `json:"address"`
	Candidates []models.ClaimCandidate `json:"candidates"`
	Total      decimal.Decimal         `json:"total"`
	// Swept is the number of resolved markets the sweep examined.
	Swept int `json:"swept"`
}

// SubmitClaimRequest asks for one batched claim transaction.
type SubmitClaimRequest struct {
	Address   string   `json:"address" binding:"required"`
	MarketIDs []uint64 `json:"market_ids" binding:"required,min=1,dive,min=1"`
}

// SubmitClaimResponse reports the broadcast claim transaction.
type SubmitClaimResponse struct {
	TxHash   string   `json:"tx_hash"`
	Address  string   `json:"address"`
	Markets  []uint64 `json:"markets"`
	GasLimit uint64   `json:"gas_limit"`
}

// ToClaimBatchResponse converts a sweep result to its API representation
func ToClaimBatchResponse(batch *models.ClaimBatch, swept int) *ClaimBatchResponse {
	return &ClaimBatchResponse{
		Address:    batch.Address,
		Candidates: batch.Candidates,
		Total:      batch.Total,
		Swept:      swept,
	}
}
