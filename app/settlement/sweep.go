package settlement

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
)

// sweeper implements the Sweeper interface
type sweeper struct {
	ledger ledger.Querier
	config *Config
	logger logger.Logger
}

// NewSweeper creates a new winnings sweeper
func NewSweeper(client ledger.Querier, config *Config, log logger.Logger) Sweeper {
	return &sweeper{
		ledger: client,
		config: config,
		logger: log,
	}
}

// Sweep checks every shadow-resolved market for a winning position held by
// address. Markets are queried concurrently with a bounded number of
// in-flight ledger calls; a failure on one market skips that market rather
// than aborting the sweep. Only when every market fails is the whole sweep
// reported as failed. Candidates come back in ascending market-id order,
// so repeated sweeps over the same state build identical batches.
func (s *sweeper) Sweep(ctx context.Context, address string, resolved []models.MarketMetadata) (*models.ClaimBatch, error) {
	batch := &models.ClaimBatch{
		Address: address,
		Total:   decimal.Zero,
	}
	if len(resolved) == 0 {
		return batch, nil
	}

	candidates := make([]*models.ClaimCandidate, len(resolved))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.SweepConcurrency)

	for i := range resolved {
		i, meta := i, resolved[i]
		g.Go(func() error {
			candidate, err := s.check(gctx, address, &meta)
			if err != nil {
				failed.Add(1)
				s.logger.Error(err, map[string]interface{}{
					"market_id": meta.MarketID,
					"address":   address,
				})
				return nil
			}
			candidates[i] = candidate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if int(failed.Load()) == len(resolved) {
		return nil, models.ErrSweepFailed
	}

	for _, c := range candidates {
		if c != nil {
			batch.Candidates = append(batch.Candidates, *c)
			batch.Total = batch.Total.Add(c.EstimatedAmount)
		}
	}
	sort.Slice(batch.Candidates, func(i, j int) bool {
		return batch.Candidates[i].MarketID < batch.Candidates[j].MarketID
	})

	return batch, nil
}

// check queries one market for a winning position. It returns nil with no
// error when the user has nothing to claim there.
func (s *sweeper) check(ctx context.Context, address string, meta *models.MarketMetadata) (*models.ClaimCandidate, error) {
	outcome, err := s.ledger.GetUserBetOutcome(ctx, meta.MarketID, address)
	if err != nil {
		return nil, err
	}
	if outcome != meta.WinningOutcome {
		return nil, nil
	}

	amount, err := s.ledger.GetUserBetAmount(ctx, meta.MarketID, address, outcome)
	if err != nil {
		return nil, err
	}

	position := &models.Position{
		MarketID: meta.MarketID,
		Address:  address,
		Outcome:  outcome,
		Amount:   amount,
	}
	if !position.Won(meta.WinningOutcome) {
		return nil, nil
	}

	// the ledger cannot distinguish a claimed position from an unclaimed
	// one, so the stake stands in as the estimate
	return &models.ClaimCandidate{
		MarketID:        meta.MarketID,
		Title:           meta.Title,
		WinningOutcome:  meta.WinningOutcome,
		EstimatedAmount: amount,
		Estimated:       true,
	}, nil
}
