package settlement

import (
	"context"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/models"
)

// Service defines the interface for settlement business logic
type Service interface {
	// Claimables sweeps every shadow-resolved market and returns the
	// batch of markets the address can claim winnings from.
	Claimables(ctx context.Context, address string) (*ClaimBatchResponse, error)

	// SubmitBatchClaim submits one transaction claiming every market in
	// the request. The batch must be non-empty.
	SubmitBatchClaim(ctx context.Context, req SubmitClaimRequest) (*SubmitClaimResponse, error)
}

// Sweeper scans resolved markets for a single address's winning positions.
type Sweeper interface {
	Sweep(ctx context.Context, address string, resolved []models.MarketMetadata) (*models.ClaimBatch, error)
}

// ledgerClient is the slice of the ledger contract the sweep needs.
type ledgerClient interface {
	ledger.Querier
	ClaimWinningsBatch(ctx context.Context, marketIDs []uint64) (ledger.TxHash, error)
}
