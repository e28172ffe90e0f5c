package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Outcome identifies one side of a binary market. The zero value means
// "no outcome" (unset winning outcome, or no position held).
type Outcome uint8

const (
	OutcomeNone Outcome = 0
	OutcomeYes  Outcome = 1
	OutcomeNo   Outcome = 2
)

// Valid reports whether the outcome is one of the two bettable sides.
func (o Outcome) Valid() bool {
	return o == OutcomeYes || o == OutcomeNo
}

func (o Outcome) String() string {
	switch o {
	case OutcomeYes:
		return "yes"
	case OutcomeNo:
		return "no"
	default:
		return "none"
	}
}

// Opposite returns the other bettable side. OutcomeNone maps to itself.
func (o Outcome) Opposite() Outcome {
	switch o {
	case OutcomeYes:
		return OutcomeNo
	case OutcomeNo:
		return OutcomeYes
	default:
		return OutcomeNone
	}
}

// MarketStatus represents the lifecycle state of a market. The ledger only
// knows open and resolved; the metadata cache stores the same enum as its
// shadow status.
type MarketStatus string

const (
	MarketStatusOpen     MarketStatus = "open"
	MarketStatusResolved MarketStatus = "resolved"
)

// NormalizeStatus maps the loose status representations seen at collaborator
// boundaries (display strings, enum names, numeric discriminants) onto the
// status enum. Ambiguous representations never travel past this function.
func NormalizeStatus(raw string) (MarketStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open", "0":
		return MarketStatusOpen, nil
	case "resolved", "1":
		return MarketStatusResolved, nil
	default:
		return "", ErrInvalidMarketStatus
	}
}

// Market is a snapshot of a single binary prediction market as reported by
// the ledger. It is never persisted locally; the authoritative copy lives
// on-chain and this struct only carries query results.
type Market struct {
	ID             uint64          `json:"id"`
	Description    string          `json:"description"`
	EndTime        int64           `json:"end_time"`
	Status         MarketStatus    `json:"status"`
	WinningOutcome Outcome         `json:"winning_outcome"`
	TotalStaked    decimal.Decimal `json:"total_staked"`
	YesPool        decimal.Decimal `json:"yes_pool"`
	NoPool         decimal.Decimal `json:"no_pool"`
	Participants   int64           `json:"participants"`
}

// Pool returns the staked total for one side.
func (m *Market) Pool(o Outcome) decimal.Decimal {
	switch o {
	case OutcomeYes:
		return m.YesPool
	case OutcomeNo:
		return m.NoPool
	default:
		return decimal.Zero
	}
}

// IsResolved reports whether the ledger has recorded a resolution.
func (m *Market) IsResolved() bool {
	return m.Status == MarketStatusResolved
}

// IsExpired reports whether the betting window has passed.
func (m *Market) IsExpired(now time.Time) bool {
	return now.Unix() >= m.EndTime
}

// CanResolve reports whether a resolution action is permitted. Resolution
// is allowed exactly once, and only while the market is open.
func (m *Market) CanResolve() bool {
	return m.Status == MarketStatusOpen
}

// Resolve applies the single permitted resolution transition.
func (m *Market) Resolve(winner Outcome) error {
	if !winner.Valid() {
		return ErrInvalidOutcome
	}
	if !m.CanResolve() {
		return ErrMarketResolved
	}

	m.Status = MarketStatusResolved
	m.WinningOutcome = winner
	return nil
}

// Validate checks the ledger invariants on a market snapshot.
func (m *Market) Validate() error {
	if m.ID == 0 {
		return ErrInvalidMarketID
	}
	if m.Status != MarketStatusOpen && m.Status != MarketStatusResolved {
		return ErrInvalidMarketStatus
	}
	if m.Status == MarketStatusResolved && !m.WinningOutcome.Valid() {
		return ErrInvalidOutcome
	}
	if !m.TotalStaked.Equal(m.YesPool.Add(m.NoPool)) {
		return ErrPoolMismatch
	}
	return nil
}

// MarketKey builds the cache key for a ledger market snapshot.
func MarketKey(id uint64) string {
	return "market:" + strconv.FormatUint(id, 10)
}
