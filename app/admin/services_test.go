package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
	"github.com/openpari/parimarket/tests/mocks"
)

type adminMocks struct {
	repo     *mocks.MockResolverRepository
	policy   *mocks.MockPolicy
	ledger   *ledger.MockClient
	metadata *metadata.MockService
}

func newAdminService(wipers ...Wiper) (Service, *adminMocks) {
	m := &adminMocks{
		repo:     new(mocks.MockResolverRepository),
		policy:   new(mocks.MockPolicy),
		ledger:   new(ledger.MockClient),
		metadata: new(metadata.MockService),
	}
	return NewService(m.repo, m.policy, m.ledger, m.metadata, wipers, logger.NewNullLogger()), m
}

func TestService_ResolveMarket(t *testing.T) {
	ctx := context.Background()

	t.Run("shadow write precedes broadcast", func(t *testing.T) {
		srvc, m := newAdminService()

		m.metadata.On("RecordResolution", ctx, uint64(7), models.OutcomeYes, "0xadmin", mock.AnythingOfType("time.Time")).
			Return(&metadata.MetadataResponse{MarketID: 7}, nil)
		m.ledger.On("ResolveMarket", ctx, uint64(7), models.OutcomeYes).
			Return(ledger.TxHash("0xres"), nil)

		result, err := srvc.ResolveMarket(ctx, ResolveRequest{MarketID: 7, Winner: models.OutcomeYes, ResolvedBy: "0xadmin"})

		assert.NoError(t, err)
		assert.Equal(t, "0xres", result.TxHash)
		m.metadata.AssertExpectations(t)
		m.ledger.AssertExpectations(t)
	})

	t.Run("double resolution stops before broadcast", func(t *testing.T) {
		srvc, m := newAdminService()

		m.metadata.On("RecordResolution", ctx, uint64(7), models.OutcomeNo, "", mock.AnythingOfType("time.Time")).
			Return(nil, models.ErrMarketResolved)

		_, err := srvc.ResolveMarket(ctx, ResolveRequest{MarketID: 7, Winner: models.OutcomeNo})

		assert.ErrorIs(t, err, models.ErrMarketResolved)
		m.ledger.AssertNotCalled(t, "ResolveMarket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("broadcast failure leaves the shadow in place", func(t *testing.T) {
		srvc, m := newAdminService()

		m.metadata.On("RecordResolution", ctx, uint64(8), models.OutcomeYes, "", mock.AnythingOfType("time.Time")).
			Return(&metadata.MetadataResponse{MarketID: 8}, nil)
		m.ledger.On("ResolveMarket", ctx, uint64(8), models.OutcomeYes).
			Return(ledger.TxHash(""), models.ErrLedgerUnavailable)

		_, err := srvc.ResolveMarket(ctx, ResolveRequest{MarketID: 8, Winner: models.OutcomeYes})

		assert.ErrorIs(t, err, models.ErrLedgerUnavailable)
		m.metadata.AssertNotCalled(t, "WipeAll", mock.Anything)
	})

	t.Run("invalid winner is rejected", func(t *testing.T) {
		srvc, _ := newAdminService()

		_, err := srvc.ResolveMarket(ctx, ResolveRequest{MarketID: 1, Winner: models.OutcomeNone})
		assert.ErrorIs(t, err, models.ErrInvalidOutcome)
	})
}

type fakeWiper struct {
	wiped bool
	err   error
}

func (w *fakeWiper) WipeAll(_ context.Context) error {
	if w.err != nil {
		return w.err
	}
	w.wiped = true
	return nil
}

func TestService_ResetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("wipes caches before clearing the ledger", func(t *testing.T) {
		w1, w2 := &fakeWiper{}, &fakeWiper{}
		srvc, m := newAdminService(w1, w2)

		m.ledger.On("ResetAll", ctx).Return(ledger.TxHash("0xreset"), nil)

		result, err := srvc.ResetAll(ctx, "0xadmin")

		assert.NoError(t, err)
		assert.Equal(t, "0xreset", result.TxHash)
		assert.True(t, w1.wiped)
		assert.True(t, w2.wiped)
	})

	t.Run("wipe failure aborts before the ledger is touched", func(t *testing.T) {
		srvc, m := newAdminService(&fakeWiper{err: assert.AnError})

		_, err := srvc.ResetAll(ctx, "0xadmin")

		assert.Error(t, err)
		m.ledger.AssertNotCalled(t, "ResetAll", mock.Anything)
	})
}

func TestService_CreateMarket(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(time.Hour).Unix()

	t.Run("predicts the next sequential market id", func(t *testing.T) {
		srvc, m := newAdminService()

		m.ledger.On("GetMarketCount", ctx).Return(uint64(4), nil)
		m.ledger.On("CreateMarket", ctx, "BTC above 100k by Friday", future).
			Return(ledger.TxHash("0xcreate"), nil)
		m.metadata.On("UpsertDraft", ctx, mock.MatchedBy(func(req metadata.UpsertDraftRequest) bool {
			return req.MarketID == 5 && req.Title == "BTC 100k"
		})).Return(&metadata.MetadataResponse{MarketID: 5}, nil)

		result, err := srvc.CreateMarket(ctx, CreateMarketRequest{
			Description: "BTC above 100k by Friday",
			EndTime:     future,
			Title:       "BTC 100k",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint64(5), result.PredictedMarketID)
		assert.Equal(t, "0xcreate", result.TxHash)
		m.ledger.AssertExpectations(t)
		m.metadata.AssertExpectations(t)
	})

	t.Run("past end time is rejected", func(t *testing.T) {
		srvc, _ := newAdminService()

		_, err := srvc.CreateMarket(ctx, CreateMarketRequest{
			Description: "x",
			EndTime:     time.Now().Add(-time.Hour).Unix(),
			Title:       "x",
		})
		assert.ErrorIs(t, err, models.ErrInvalidProposalEndTime)
	})

	t.Run("draft failure does not fail the creation", func(t *testing.T) {
		srvc, m := newAdminService()

		m.ledger.On("GetMarketCount", ctx).Return(uint64(0), nil)
		m.ledger.On("CreateMarket", ctx, "x", future).Return(ledger.TxHash("0xc"), nil)
		m.metadata.On("UpsertDraft", ctx, mock.Anything).Return(nil, assert.AnError)

		result, err := srvc.CreateMarket(ctx, CreateMarketRequest{Description: "x", EndTime: future, Title: "x"})

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), result.PredictedMarketID)
	})
}

func TestService_Resolvers(t *testing.T) {
	ctx := context.Background()

	t.Run("add invalidates the policy cache", func(t *testing.T) {
		srvc, m := newAdminService()

		m.repo.On("Create", ctx, mock.MatchedBy(func(r *models.Resolver) bool {
			return r.Address == "0xnew" && r.Active
		})).Return(nil)
		m.policy.On("Invalidate").Return()

		result, err := srvc.AddResolver(ctx, AddResolverRequest{Address: "0xnew", Label: "ops"})

		assert.NoError(t, err)
		assert.Equal(t, "0xnew", result.Address)
		m.policy.AssertExpectations(t)
	})

	t.Run("empty address is rejected", func(t *testing.T) {
		srvc, m := newAdminService()

		_, err := srvc.AddResolver(ctx, AddResolverRequest{})

		assert.ErrorIs(t, err, models.ErrInvalidResolverAddress)
		m.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
