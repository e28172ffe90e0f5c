package ledger

import (
	"context"

	"github.com/openpari/parimarket/models"
	"github.com/shopspring/decimal"
)

// TxHash identifies a broadcast transaction. A hash is returned as soon as
// the transaction is accepted by the node; confirmation is asynchronous and
// never awaited by this package.
type TxHash string

// Querier is the read-only contract interface. All amounts are integers in
// the chain's smallest unit.
type Querier interface {
	GetMarket(ctx context.Context, marketID uint64) (*models.Market, error)
	GetMarketCount(ctx context.Context) (uint64, error)
	GetOutcomeTotal(ctx context.Context, marketID uint64, outcome models.Outcome) (decimal.Decimal, error)
	GetParticipantCount(ctx context.Context, marketID uint64) (int64, error)
	GetUserBetOutcome(ctx context.Context, marketID uint64, address string) (models.Outcome, error)
	GetUserBetAmount(ctx context.Context, marketID uint64, address string, outcome models.Outcome) (decimal.Decimal, error)
}

// Submitter is the mutation interface. Every call builds, signs and
// broadcasts exactly one transaction.
type Submitter interface {
	CreateMarket(ctx context.Context, description string, endTime int64) (TxHash, error)
	PlaceBet(ctx context.Context, marketID uint64, outcome models.Outcome, amount decimal.Decimal) (TxHash, error)
	ResolveMarket(ctx context.Context, marketID uint64, winner models.Outcome) (TxHash, error)
	ClaimWinnings(ctx context.Context, marketID uint64) (TxHash, error)
	ClaimWinningsBatch(ctx context.Context, marketIDs []uint64) (TxHash, error)
	ResetAll(ctx context.Context) (TxHash, error)
}

// Client is the full ledger collaborator contract.
type Client interface {
	Querier
	Submitter
}
