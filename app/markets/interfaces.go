package markets

import (
	"context"
)

// Service defines the interface for the market read API
type Service interface {
	// List returns the reconciled view of every market on the ledger.
	List(ctx context.Context) ([]MarketResponse, error)
	// Get returns one market with payout details; when address is
	// non-empty the user's position and exact claimable amount are
	// included.
	Get(ctx context.Context, marketID uint64, address string) (*MarketDetailResponse, error)
}
