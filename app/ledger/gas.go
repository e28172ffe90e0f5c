package ledger

import "errors"

var ErrInvalidGasSchedule = errors.New("invalid gas schedule")

// GasSchedule models the per-action gas limits. The batch claim scales
// linearly with the number of markets referenced: a base cost for the call
// plus a fixed cost per claim processed in the contract's loop.
type GasSchedule struct {
	CreateMarket  uint64 `env:"GAS_CREATE_MARKET" env-default:"20000000"`
	PlaceBet      uint64 `env:"GAS_PLACE_BET" env-default:"10000000"`
	ResolveMarket uint64 `env:"GAS_RESOLVE_MARKET" env-default:"10000000"`
	Claim         uint64 `env:"GAS_CLAIM" env-default:"10000000"`
	BatchBase     uint64 `env:"GAS_BATCH_BASE" env-default:"5000000"`
	BatchPerClaim uint64 `env:"GAS_BATCH_PER_CLAIM" env-default:"1500000"`
	ResetAll      uint64 `env:"GAS_RESET_ALL" env-default:"20000000"`
}

// BatchClaim returns the gas limit for a batch claim over n markets.
func (g *GasSchedule) BatchClaim(n int) uint64 {
	return g.BatchBase + uint64(n)*g.BatchPerClaim
}

// Validate validates the gas schedule
func (g *GasSchedule) Validate() error {
	if g.CreateMarket == 0 || g.PlaceBet == 0 || g.ResolveMarket == 0 ||
		g.Claim == 0 || g.BatchBase == 0 || g.BatchPerClaim == 0 || g.ResetAll == 0 {
		return ErrInvalidGasSchedule
	}
	return nil
}

// DefaultGasSchedule returns the default gas limits.
func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		CreateMarket:  20_000_000,
		PlaceBet:      10_000_000,
		ResolveMarket: 10_000_000,
		Claim:         10_000_000,
		BatchBase:     5_000_000,
		BatchPerClaim: 1_500_000,
		ResetAll:      20_000_000,
	}
}
