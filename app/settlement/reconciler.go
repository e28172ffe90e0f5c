package settlement

import (
	"github.com/openpari/parimarket/models"
)

// Reconcile merges a ledger market snapshot with its off-chain metadata
// record into the effective market view. The cache's shadow resolution wins
// over a still-open ledger status: the shadow is written before the resolve
// transaction confirms, so during the confirmation window the ledger lags
// the cache. The merge is strictly one-way; a resolved ledger market is
// never reopened by a stale cache record.
func Reconcile(market *models.Market, meta *models.MarketMetadata) *models.Market {
	if market == nil {
		return nil
	}

	merged := *market

	if meta != nil {
		// display fields live off-chain only
		if meta.Title != "" {
			merged.Description = meta.Title
		}

		if meta.IsResolved() && !merged.IsResolved() {
			merged.Status = models.MarketStatusResolved
			merged.WinningOutcome = meta.WinningOutcome
		}
	}

	return &merged
}

// EffectiveStatus returns the reconciled status without building the full
// merged view.
func EffectiveStatus(market *models.Market, meta *models.MarketMetadata) models.MarketStatus {
	if meta != nil && meta.IsResolved() {
		return models.MarketStatusResolved
	}
	if market == nil {
		return models.MarketStatusOpen
	}
	return market.Status
}
