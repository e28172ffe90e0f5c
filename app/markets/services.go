package markets

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/app/payout"
	"github.com/openpari/parimarket/app/settlement"
	"github.com/openpari/parimarket/internal/cache"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
)

// service implements the Service interface
type service struct {
	ledger   ledger.Querier
	metaRepo metadata.Repository
	engine   payout.Engine
	cache    cache.Cache[models.Market]
	config   *Config
	logger   logger.Logger
}

// NewService creates a new markets read service
func NewService(client ledger.Querier, metaRepo metadata.Repository, engine payout.Engine, snapshots cache.Cache[models.Market], config *Config, log logger.Logger) Service {
	return &service{
		ledger:   client,
		metaRepo: metaRepo,
		engine:   engine,
		cache:    snapshots,
		config:   config,
		logger:   log,
	}
}

// List returns every market in ascending id order, reconciled against the
// metadata cache.
func (s *service) List(ctx context.Context) ([]MarketResponse, error) {
	count, err := s.ledger.GetMarketCount(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []MarketResponse{}, nil
	}

	ids := make([]uint64, count)
	for i := range ids {
		ids[i] = uint64(i + 1)
	}

	snapshots, err := s.snapshots(ctx, ids)
	if err != nil {
		return nil, err
	}

	metaByID, err := s.metadataFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]MarketResponse, 0, len(ids))
	for _, id := range ids {
		market := snapshots[id]
		meta := metaByID[id]
		if market == nil {
			out = append(out, UnavailableMarketResponse(id, meta))
			continue
		}
		out = append(out, ToMarketResponse(settlement.Reconcile(market, meta), meta, s.engine))
	}
	return out, nil
}

// Get returns one market with payout detail. With a non-empty address the
// response includes the caller's position and the exact amount a winning
// stake can withdraw.
func (s *service) Get(ctx context.Context, marketID uint64, address string) (*MarketDetailResponse, error) {
	if marketID == 0 {
		return nil, models.ErrInvalidMarketID
	}

	market, err := s.snapshot(ctx, marketID)
	if err != nil {
		return nil, err
	}

	meta, err := s.metaRepo.GetByMarketID(ctx, marketID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	merged := settlement.Reconcile(market, meta)
	detail := &MarketDetailResponse{
		MarketResponse: ToMarketResponse(merged, meta, s.engine),
		Multipliers: Prices{
			Yes: s.engine.Multiplier(merged, models.OutcomeYes),
			No:  s.engine.Multiplier(merged, models.OutcomeNo),
		},
	}
	if meta != nil {
		detail.LongDescription = meta.LongDescription
	}

	if address != "" {
		position, err := s.position(ctx, marketID, address)
		if err != nil {
			return nil, err
		}
		if position.Exists() {
			detail.Position = &PositionResponse{
				Outcome:   position.Outcome,
				Amount:    position.Amount,
				Claimable: s.engine.Claimable(merged, position),
			}
		}
	}

	return detail, nil
}

func (s *service) position(ctx context.Context, marketID uint64, address string) (*models.Position, error) {
	outcome, err := s.ledger.GetUserBetOutcome(ctx, marketID, address)
	if err != nil {
		return nil, err
	}

	position := &models.Position{MarketID: marketID, Address: address, Outcome: outcome}
	if !outcome.Valid() {
		return position, nil
	}

	amount, err := s.ledger.GetUserBetAmount(ctx, marketID, address, outcome)
	if err != nil {
		return nil, err
	}
	position.Amount = amount
	return position, nil
}

// snapshot returns one market, served from cache when fresh.
func (s *service) snapshot(ctx context.Context, marketID uint64) (*models.Market, error) {
	if cached, err := s.cache.Get(ctx, models.MarketKey(marketID)); err == nil {
		return &cached, nil
	}

	market, err := s.ledger.GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, models.MarketKey(marketID), *market, s.config.SnapshotTTL); err != nil {
		s.logger.Error(err, map[string]interface{}{"market_id": marketID})
	}
	return market, nil
}

// snapshots batch-reads the cache and fills misses from the ledger with
// bounded concurrency.
func (s *service) snapshots(ctx context.Context, ids []uint64) (map[uint64]*models.Market, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = models.MarketKey(id)
	}

	cached, cacheErrs := s.cache.MGet(ctx, keys...)

	out := make(map[uint64]*models.Market, len(ids))
	var missing []uint64
	for i, id := range ids {
		if cacheErrs[i] == nil {
			market := cached[i]
			out[id] = &market
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	fetched := make([]*models.Market, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.FetchConcurrency)
	for i, id := range missing {
		i, id := i, id
		g.Go(func() error {
			market, err := s.ledger.GetMarket(gctx, id)
			if err != nil {
				// one unreadable market must not take the listing down
				s.logger.Error(err, map[string]interface{}{"market_id": id})
				return nil
			}
			fetched[i] = market
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	toCache := make(map[string]models.Market, len(missing))
	for i, id := range missing {
		if fetched[i] == nil {
			continue
		}
		out[id] = fetched[i]
		toCache[models.MarketKey(id)] = *fetched[i]
	}
	if len(toCache) > 0 {
		if err := s.cache.MSet(ctx, toCache, s.config.SnapshotTTL); err != nil {
			s.logger.Error(err, map[string]interface{}{"markets": len(toCache)})
		}
	}

	return out, nil
}

func (s *service) metadataFor(ctx context.Context, ids []uint64) (map[uint64]*models.MarketMetadata, error) {
	records, err := s.metaRepo.GetByMarketIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*models.MarketMetadata, len(records))
	for i := range records {
		byID[records[i].MarketID] = &records[i]
	}
	return byID, nil
}
