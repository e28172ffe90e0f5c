package settlement

import (
	"errors"
	"time"
)

var ErrInvalidSweepConfig = errors.New("invalid sweep configuration")

// Config represents the configuration for the settlement module
type Config struct {
	// SweepConcurrency bounds the number of in-flight ledger queries
	// during a claimables sweep.
	SweepConcurrency int           `env:"SETTLEMENT_SWEEP_CONCURRENCY" env-default:"8"`
	SweepTimeout     time.Duration `env:"SETTLEMENT_SWEEP_TIMEOUT" env-default:"30s"`
}

func (c *Config) Validate() error {
	if c.SweepConcurrency <= 0 {
		return ErrInvalidSweepConfig
	}
	if c.SweepTimeout <= 0 {
		return ErrInvalidSweepConfig
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		SweepConcurrency: 8,
		SweepTimeout:     30 * time.Second,
	}
}
