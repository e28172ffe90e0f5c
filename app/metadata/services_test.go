package metadata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/models"
	"github.com/openpari/parimarket/tests/mocks"
)

func newTestService(repo Repository, feed Feed) Service {
	return NewService(repo, feed, sanitizer.NewHTMLStripper(), logger.NewNullLogger())
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		mockRepo.On("GetByMarketID", ctx, uint64(7)).Return(&models.MarketMetadata{
			MarketID: 7,
			Title:    "Will it rain tomorrow?",
			Status:   models.MarketStatusOpen,
		}, nil)

		result, err := srvc.Get(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, uint64(7), result.MarketID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		mockRepo.On("GetByMarketID", ctx, uint64(9)).Return(nil, gorm.ErrRecordNotFound)

		result, err := srvc.Get(ctx, 9)

		assert.ErrorIs(t, err, models.ErrRecordNotFound)
		assert.Nil(t, result)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_UpsertDraft(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates new record with stripped markup", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		mockFeed := new(MockFeed)
		srvc := newTestService(mockRepo, mockFeed)

		mockRepo.On("GetByMarketID", ctx, uint64(3)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m *models.MarketMetadata) bool {
			return m.MarketID == 3 && m.Title == "Election night" && m.Status == models.MarketStatusOpen
		})).Return(nil)
		mockFeed.On("Publish", ctx, mock.MatchedBy(func(e ChangeEvent) bool {
			return e.Kind == ChangeKindDraft && e.MarketID == 3
		})).Return(nil)

		result, err := srvc.UpsertDraft(ctx, UpsertDraftRequest{
			MarketID: 3,
			Title:    "<b>Election</b> night",
			Category: "politics",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Election night", result.Title)
		mockRepo.AssertExpectations(t)
		mockFeed.AssertExpectations(t)
	})

	t.Run("Preserves shadow resolution on existing record", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		resolvedAt := time.Now()
		mockRepo.On("GetByMarketID", ctx, uint64(4)).Return(&models.MarketMetadata{
			MarketID:       4,
			Title:          "old",
			Status:         models.MarketStatusResolved,
			WinningOutcome: models.OutcomeYes,
			ResolvedBy:     "0xadmin",
			ResolvedAt:     &resolvedAt,
		}, nil)
		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m *models.MarketMetadata) bool {
			return m.Status == models.MarketStatusResolved && m.WinningOutcome == models.OutcomeYes
		})).Return(nil)

		result, err := srvc.UpsertDraft(ctx, UpsertDraftRequest{MarketID: 4, Title: "new"})

		assert.NoError(t, err)
		assert.Equal(t, models.MarketStatusResolved, result.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects zero market id", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		_, err := srvc.UpsertDraft(ctx, UpsertDraftRequest{Title: "x"})
		assert.ErrorIs(t, err, models.ErrInvalidMarketID)
	})
}

func TestService_RecordResolution(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Writes shadow resolution for unseen market", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		mockFeed := new(MockFeed)
		srvc := newTestService(mockRepo, mockFeed)

		mockRepo.On("GetByMarketID", ctx, uint64(5)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Upsert", ctx, mock.MatchedBy(func(m *models.MarketMetadata) bool {
			return m.MarketID == 5 &&
				m.Status == models.MarketStatusResolved &&
				m.WinningOutcome == models.OutcomeNo &&
				m.ResolvedBy == "0xadmin" &&
				m.ResolvedAt != nil
		})).Return(nil)
		mockFeed.On("Publish", ctx, mock.MatchedBy(func(e ChangeEvent) bool {
			return e.Kind == ChangeKindResolution && e.MarketID == 5
		})).Return(nil)

		result, err := srvc.RecordResolution(ctx, 5, models.OutcomeNo, "0xadmin", now)

		assert.NoError(t, err)
		assert.Equal(t, models.OutcomeNo, result.WinningOutcome)
		mockRepo.AssertExpectations(t)
		mockFeed.AssertExpectations(t)
	})

	t.Run("Second resolution is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		mockRepo.On("GetByMarketID", ctx, uint64(5)).Return(&models.MarketMetadata{
			MarketID:       5,
			Status:         models.MarketStatusResolved,
			WinningOutcome: models.OutcomeNo,
		}, nil)

		_, err := srvc.RecordResolution(ctx, 5, models.OutcomeYes, "0xadmin", now)

		assert.ErrorIs(t, err, models.ErrMarketResolved)
		mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Invalid winner is rejected", func(t *testing.T) {
		mockRepo := new(mocks.MockMetadataRepository)
		srvc := newTestService(mockRepo, nil)

		mockRepo.On("GetByMarketID", ctx, uint64(5)).Return(nil, gorm.ErrRecordNotFound)

		_, err := srvc.RecordResolution(ctx, 5, models.OutcomeNone, "0xadmin", now)
		assert.ErrorIs(t, err, models.ErrInvalidOutcome)
	})
}

func TestService_WipeAll(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.MockMetadataRepository)
	mockFeed := new(MockFeed)
	srvc := newTestService(mockRepo, mockFeed)

	mockRepo.On("DeleteAll", ctx).Return(nil)
	mockFeed.On("Publish", ctx, mock.MatchedBy(func(e ChangeEvent) bool {
		return e.Kind == ChangeKindWipe
	})).Return(nil)

	assert.NoError(t, srvc.WipeAll(ctx))
	mockRepo.AssertExpectations(t)
	mockFeed.AssertExpectations(t)
}

func TestService_FeedFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(mocks.MockMetadataRepository)
	mockFeed := new(MockFeed)
	srvc := newTestService(mockRepo, mockFeed)

	mockRepo.On("GetByMarketID", ctx, uint64(8)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	mockFeed.On("Publish", ctx, mock.Anything).Return(assert.AnError)

	_, err := srvc.UpsertDraft(ctx, UpsertDraftRequest{MarketID: 8, Title: "x"})
	assert.NoError(t, err)
}
