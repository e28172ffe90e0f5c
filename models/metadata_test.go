package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarketMetadata_MarkResolved(t *testing.T) {
	t.Run("records the shadow resolution", func(t *testing.T) {
		m := &MarketMetadata{MarketID: 7, Status: MarketStatusOpen}
		at := time.Now()

		err := m.MarkResolved(OutcomeYes, "erd1admin", at)
		assert.NoError(t, err)
		assert.True(t, m.IsResolved())
		assert.Equal(t, OutcomeYes, m.WinningOutcome)
		assert.Equal(t, "erd1admin", m.ResolvedBy)
		assert.Equal(t, at, *m.ResolvedAt)
	})

	t.Run("never reverts a resolved shadow", func(t *testing.T) {
		m := &MarketMetadata{MarketID: 7, Status: MarketStatusResolved, WinningOutcome: OutcomeNo}

		err := m.MarkResolved(OutcomeYes, "erd1admin", time.Now())
		assert.ErrorIs(t, err, ErrMarketResolved)
		assert.Equal(t, OutcomeNo, m.WinningOutcome)
	})

	t.Run("rejects invalid winner", func(t *testing.T) {
		m := &MarketMetadata{MarketID: 7, Status: MarketStatusOpen}
		assert.ErrorIs(t, m.MarkResolved(OutcomeNone, "erd1admin", time.Now()), ErrInvalidOutcome)
	})
}

func TestMarketMetadata_Validate(t *testing.T) {
	m := &MarketMetadata{MarketID: 1, Status: MarketStatusOpen}
	assert.NoError(t, m.Validate())

	m.MarketID = 0
	assert.ErrorIs(t, m.Validate(), ErrInvalidMarketID)

	m = &MarketMetadata{MarketID: 1, Status: "pending"}
	assert.ErrorIs(t, m.Validate(), ErrInvalidMarketStatus)

	m = &MarketMetadata{MarketID: 1, Status: MarketStatusResolved}
	assert.ErrorIs(t, m.Validate(), ErrInvalidOutcome)

	m = &MarketMetadata{MarketID: 1, Status: MarketStatusOpen, WinningOutcome: OutcomeYes}
	assert.ErrorIs(t, m.Validate(), ErrShadowRevert)

	m = &MarketMetadata{MarketID: 1, Status: MarketStatusResolved, WinningOutcome: OutcomeNo}
	assert.NoError(t, m.Validate())
}
