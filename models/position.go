package models

import "github.com/shopspring/decimal"

// Position is a user's stake in a single market as reported by the ledger.
// The single-position rule holds on-chain: a user cannot stake both sides
// of the same market, so Outcome is either the one side they backed or
// OutcomeNone.
type Position struct {
	MarketID uint64          `json:"market_id"`
	Address  string          `json:"address"`
	Outcome  Outcome         `json:"outcome"`
	Amount   decimal.Decimal `json:"amount"`
}

// Exists reports whether the user holds any stake in the market.
func (p *Position) Exists() bool {
	return p.Outcome.Valid() && p.Amount.GreaterThan(decimal.Zero)
}

// Won reports whether the position backed the winning side. The ledger
// gives no explicit claimed flag, so a winning position with a non-zero
// amount is treated as claimable; see the sweep for how that estimate is
// surfaced.
func (p *Position) Won(winner Outcome) bool {
	return p.Exists() && p.Outcome == winner
}
