package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
)

// Wiper clears one off-chain cache table ahead of a full reset.
type Wiper interface {
	WipeAll(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	repo     Repository
	policy   Policy
	ledger   ledger.Client
	metadata metadata.Service
	wipers   []Wiper
	logger   logger.Logger
}

// NewService creates a new admin service
func NewService(repo Repository, policy Policy, client ledger.Client, metadataSrv metadata.Service, wipers []Wiper, log logger.Logger) Service {
	return &service{
		repo:     repo,
		policy:   policy,
		ledger:   client,
		metadata: metadataSrv,
		wipers:   wipers,
		logger:   log,
	}
}

// ResolveMarket records the shadow resolution in the cache and then
// broadcasts the resolve transaction. The shadow write comes first so the
// market reads as resolved immediately; the ledger catches up when the
// transaction confirms. A failed broadcast leaves the shadow in place and
// reports the error; the administrative reset is the correction path.
func (s *service) ResolveMarket(ctx context.Context, req ResolveRequest) (*ResolveResponse, error) {
	if !req.Winner.Valid() {
		return nil, models.ErrInvalidOutcome
	}

	now := time.Now().UTC()
	if _, err := s.metadata.RecordResolution(ctx, req.MarketID, req.Winner, req.ResolvedBy, now); err != nil {
		return nil, err
	}

	hash, err := s.ledger.ResolveMarket(ctx, req.MarketID, req.Winner)
	if err != nil {
		s.logger.Error(err, map[string]interface{}{
			"market_id": req.MarketID,
			"winner":    req.Winner.String(),
		})
		return nil, err
	}

	s.logger.Info("market resolved", map[string]interface{}{
		"market_id":   req.MarketID,
		"winner":      req.Winner.String(),
		"resolved_by": req.ResolvedBy,
		"tx_hash":     string(hash),
	})

	return &ResolveResponse{
		MarketID:   req.MarketID,
		Winner:     req.Winner,
		ResolvedBy: req.ResolvedBy,
		ResolvedAt: now,
		TxHash:     string(hash),
	}, nil
}

// ResetAll wipes every off-chain cache table and then clears the ledger
// state. The cache wipe happens first: a reset ledger paired with stale
// shadow resolutions would resurrect markets that no longer exist.
func (s *service) ResetAll(ctx context.Context, requestedBy string) (*ResetResponse, error) {
	for _, w := range s.wipers {
		if err := w.WipeAll(ctx); err != nil {
			return nil, err
		}
	}

	hash, err := s.ledger.ResetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("full reset executed", map[string]interface{}{
		"requested_by": requestedBy,
		"tx_hash":      string(hash),
	})

	return &ResetResponse{
		TxHash:      string(hash),
		RequestedBy: requestedBy,
		ResetAt:     time.Now().UTC(),
	}, nil
}

// CreateMarket broadcasts the creation transaction and seeds the display
// record under the market id the contract will assign next.
func (s *service) CreateMarket(ctx context.Context, req CreateMarketRequest) (*CreateMarketResponse, error) {
	if req.EndTime <= time.Now().Unix() {
		return nil, models.ErrInvalidProposalEndTime
	}

	count, err := s.ledger.GetMarketCount(ctx)
	if err != nil {
		return nil, err
	}
	predictedID := count + 1

	hash, err := s.ledger.CreateMarket(ctx, req.Description, req.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.metadata.UpsertDraft(ctx, metadata.UpsertDraftRequest{
		MarketID:        predictedID,
		Title:           req.Title,
		Category:        req.Category,
		LongDescription: req.LongDescription,
	}); err != nil {
		// the market exists on the ledger regardless; the draft can be
		// re-submitted through the metadata endpoint
		s.logger.Error(err, map[string]interface{}{
			"market_id": predictedID,
		})
	}

	return &CreateMarketResponse{
		PredictedMarketID: predictedID,
		TxHash:            string(hash),
	}, nil
}

// ListResolvers returns the full allow-list, inactive entries included.
func (s *service) ListResolvers(ctx context.Context) ([]ResolverResponse, error) {
	resolvers, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToResolverResponseList(resolvers), nil
}

// AddResolver appends an address to the allow-list and drops the policy
// cache so the change applies immediately.
func (s *service) AddResolver(ctx context.Context, req AddResolverRequest) (*ResolverResponse, error) {
	resolver := &models.Resolver{
		Address: req.Address,
		Label:   req.Label,
		Active:  true,
	}
	if err := resolver.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, resolver); err != nil {
		return nil, err
	}
	s.policy.Invalidate()

	return ToResolverResponse(resolver), nil
}

// SetResolverActive toggles an allow-list entry.
func (s *service) SetResolverActive(ctx context.Context, id uuid.UUID, active bool) error {
	err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrRecordNotFound
		}
		return err
	}
	s.policy.Invalidate()
	return nil
}
