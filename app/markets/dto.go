package markets

import (
	"github.com/shopspring/decimal"

	"github.com/openpari/parimarket/app/payout"
	"github.com/openpari/parimarket/models"
)

// Prices is the implied percentage price of each side.
type Prices struct {
	Yes decimal.Decimal `json:"yes"`
	No  decimal.Decimal `json:"no"`
}

// MarketResponse is the reconciled list view of one market.
type MarketResponse struct {
	ID             uint64              `json:"id"`
	Title          string              `json:"title"`
	Category       string              `json:"category,omitempty"`
	Status         models.MarketStatus `json:"status"`
	WinningOutcome models.Outcome      `json:"winning_outcome"`
	EndTime        int64               `json:"end_time"`
	TotalStaked    decimal.Decimal     `json:"total_staked"`
	YesPool        decimal.Decimal     `json:"yes_pool"`
	NoPool         decimal.Decimal     `json:"no_pool"`
	Participants   int64               `json:"participants"`
	Prices         Prices              `json:"prices"`
	// Unavailable marks a market whose ledger snapshot could not be read;
	// pools and prices are zero and only cached display copy is shown.
	Unavailable bool `json:"unavailable,omitempty"`
}

// PositionResponse is the caller's stake in one market, with the exact
// pro-rata amount a winning stake can withdraw.
type PositionResponse struct {
	Outcome   models.Outcome  `json:"outcome"`
	Amount    decimal.Decimal `json:"amount"`
	Claimable decimal.Decimal `json:"claimable"`
}

// MarketDetailResponse is the single-market view.
type MarketDetailResponse struct {
	MarketResponse
	LongDescription string            `json:"long_description,omitempty"`
	Multipliers     Prices            `json:"multipliers"`
	Position        *PositionResponse `json:"position,omitempty"`
}

// ToMarketResponse builds the list view from a reconciled market and its
// metadata record.
func ToMarketResponse(market *models.Market, meta *models.MarketMetadata, engine payout.Engine) MarketResponse {
	resp := MarketResponse{
		ID:             market.ID,
		Title:          market.Description,
		Status:         market.Status,
		WinningOutcome: market.WinningOutcome,
		EndTime:        market.EndTime,
		TotalStaked:    market.TotalStaked,
		YesPool:        market.YesPool,
		NoPool:         market.NoPool,
		Participants:   market.Participants,
		Prices: Prices{
			Yes: engine.ImpliedPrice(market, models.OutcomeYes),
			No:  engine.ImpliedPrice(market, models.OutcomeNo),
		},
	}
	if meta != nil {
		resp.Category = meta.Category
	}
	return resp
}

// UnavailableMarketResponse is the list entry for a market whose snapshot
// fetch failed. The id keeps its slot in the listing so transient ledger
// errors do not change the listing length.
func UnavailableMarketResponse(id uint64, meta *models.MarketMetadata) MarketResponse {
	resp := MarketResponse{ID: id, Unavailable: true}
	if meta != nil {
		resp.Title = meta.Title
		resp.Category = meta.Category
		resp.Status = meta.Status
		resp.WinningOutcome = meta.WinningOutcome
	}
	return resp
}
