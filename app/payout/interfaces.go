package payout

import (
	"github.com/shopspring/decimal"

	"github.com/openpari/parimarket/models"
)

// Engine computes pari-mutuel payouts and derived prices for YES/NO markets.
type Engine interface {
	// Claimable returns the amount a winning stake can withdraw from a
	// resolved market. Losing or absent stakes return zero.
	Claimable(market *models.Market, position *models.Position) decimal.Decimal

	// Multiplier returns the gross payout per unit staked on the given
	// side, i.e. total pool divided by that side's pool.
	Multiplier(market *models.Market, outcome models.Outcome) decimal.Decimal

	// ImpliedPrice returns the market's probability estimate for an
	// outcome as a percentage bounded to [1, 99].
	ImpliedPrice(market *models.Market, outcome models.Outcome) decimal.Decimal
}
