package settlement

import (
	"context"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
)

// service implements the Service interface
type service struct {
	ledger   ledgerClient
	metaRepo metadata.Repository
	sweeper  Sweeper
	config   *Config
	gas      ledger.GasSchedule
	logger   logger.Logger
}

// NewService creates a new settlement service
func NewService(client ledger.Client, metaRepo metadata.Repository, sweeper Sweeper, config *Config, gas ledger.GasSchedule, log logger.Logger) Service {
	return &service{
		ledger:   client,
		metaRepo: metaRepo,
		sweeper:  sweeper,
		config:   config,
		gas:      gas,
		logger:   log,
	}
}

// Claimables sweeps every shadow-resolved market for winnings the address
// has not collected yet.
func (s *service) Claimables(ctx context.Context, address string) (*ClaimBatchResponse, error) {
	if address == "" {
		return nil, models.ErrInvalidResolverAddress
	}

	resolved, err := s.metaRepo.GetResolved(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.SweepTimeout)
	defer cancel()

	batch, err := s.sweeper.Sweep(ctx, address, resolved)
	if err != nil {
		return nil, err
	}

	return ToClaimBatchResponse(batch, len(resolved)), nil
}

// SubmitBatchClaim broadcasts one transaction claiming every requested
// market. Nothing is recorded locally: claim state lives in the ledger, so
// a failed broadcast leaves no trace to undo.
func (s *service) SubmitBatchClaim(ctx context.Context, req SubmitClaimRequest) (*SubmitClaimResponse, error) {
	if req.Address == "" {
		return nil, models.ErrInvalidResolverAddress
	}
	if len(req.MarketIDs) == 0 {
		return nil, models.ErrEmptyClaimBatch
	}

	hash, err := s.ledger.ClaimWinningsBatch(ctx, req.MarketIDs)
	if err != nil {
		return nil, err
	}

	s.logger.Info("batch claim submitted", map[string]interface{}{
		"address": req.Address,
		"markets": len(req.MarketIDs),
		"tx_hash": string(hash),
	})

	return &SubmitClaimResponse{
		TxHash:   string(hash),
		Address:  req.Address,
		Markets:  req.MarketIDs,
		GasLimit: s.gas.BatchClaim(len(req.MarketIDs)),
	}, nil
}
