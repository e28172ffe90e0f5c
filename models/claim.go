package models

import "github.com/shopspring/decimal"

// ClaimCandidate is one market on which the user holds an apparently
// unclaimed winning position. EstimatedAmount is the user's stake, not the
// exact pro-rata payout; the authoritative amount is computed inside the
// ledger's claim logic, so candidates are always presented as estimates.
type ClaimCandidate struct {
	MarketID        uint64          `json:"market_id"`
	Title           string          `json:"title"`
	WinningOutcome  Outcome         `json:"winning_outcome"`
	EstimatedAmount decimal.Decimal `json:"estimated_amount"`
	Estimated       bool            `json:"estimated"`
}

// ClaimBatch is the ephemeral result of a winnings sweep: the ordered set
// of markets to pass to a single batched claim transaction. It is built by
// a sweep run, consumed by one submission, and discarded.
type ClaimBatch struct {
	Address    string           `json:"address"`
	Candidates []ClaimCandidate `json:"candidates"`
	Total      decimal.Decimal  `json:"total"`
}

// MarketIDs returns the candidate market identifiers in batch order.
func (b *ClaimBatch) MarketIDs() []uint64 {
	ids := make([]uint64, 0, len(b.Candidates))
	for _, c := range b.Candidates {
		ids = append(ids, c.MarketID)
	}
	return ids
}

// Empty reports whether the sweep found nothing to claim.
func (b *ClaimBatch) Empty() bool {
	return len(b.Candidates) == 0
}
