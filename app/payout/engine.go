package payout

import (
	"github.com/shopspring/decimal"

	"github.com/openpari/parimarket/models"
)

var (
	minPrice = decimal.NewFromInt(1)
	maxPrice = decimal.NewFromInt(99)
	hundred  = decimal.NewFromInt(100)
	fifty    = decimal.NewFromInt(50)
)

// payoutEngine implements the Engine interface
type payoutEngine struct{}

// NewEngine creates a new payout engine
func NewEngine() Engine {
	return &payoutEngine{}
}

// Claimable returns the winner's pro-rata share of the total pool, rounded
// down to an integer amount. Winners split the whole pool, losers included,
// in proportion to their stake in the winning side:
//
//	claimable = floor(stake * totalStaked / winningPool)
//
// A market whose winning pool is empty pays nothing; the unmatched stakes
// stay locked in the contract.
func (e *payoutEngine) Claimable(market *models.Market, position *models.Position) decimal.Decimal {
	if market == nil || position == nil || !position.Exists() {
		return decimal.Zero
	}
	if !market.IsResolved() || !position.Won(market.WinningOutcome) {
		return decimal.Zero
	}

	winningPool := market.Pool(market.WinningOutcome)
	if winningPool.IsZero() {
		return decimal.Zero
	}

	// QuoRem with precision 0 divides exactly; Div would round the
	// quotient at DivisionPrecision digits, which at wei-scale pools can
	// round up across the integer boundary before any Floor.
	quotient, _ := position.Amount.Mul(market.TotalStaked).QuoRem(winningPool, 0)
	return quotient
}

// Multiplier returns the gross payout per unit staked on outcome. One whole
// unit back means the side holds the entire pool.
func (e *payoutEngine) Multiplier(market *models.Market, outcome models.Outcome) decimal.Decimal {
	if market == nil || !outcome.Valid() {
		return decimal.Zero
	}

	pool := market.Pool(outcome)
	if pool.IsZero() {
		return decimal.Zero
	}

	return market.TotalStaked.Div(pool)
}

// ImpliedPrice converts a side's pool share into a percentage price, clamped
// to [1, 99]. An empty market prices both sides at 50.
func (e *payoutEngine) ImpliedPrice(market *models.Market, outcome models.Outcome) decimal.Decimal {
	if market == nil || !outcome.Valid() {
		return decimal.Zero
	}
	if market.TotalStaked.IsZero() {
		return fifty
	}

	pool := market.Pool(outcome)
	if pool.IsZero() {
		return minPrice
	}

	price := pool.Div(market.TotalStaked).Mul(hundred)
	if price.LessThan(minPrice) {
		return minPrice
	}
	if price.GreaterThan(maxPrice) {
		return maxPrice
	}
	return price
}
