package markets

import (
	"errors"
	"time"
)

var ErrInvalidMarketsConfig = errors.New("invalid markets configuration")

// Config represents the configuration for the markets read API
type Config struct {
	// SnapshotTTL bounds how long a ledger snapshot is served from cache.
	SnapshotTTL time.Duration `env:"MARKETS_SNAPSHOT_TTL" env-default:"5s"`
	// FetchConcurrency bounds the in-flight ledger queries while filling
	// cache misses during a list.
	FetchConcurrency int `env:"MARKETS_FETCH_CONCURRENCY" env-default:"8"`
}

func (c *Config) Validate() error {
	if c.SnapshotTTL <= 0 || c.FetchConcurrency <= 0 {
		return ErrInvalidMarketsConfig
	}
	return nil
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		SnapshotTTL:      5 * time.Second,
		FetchConcurrency: 8,
	}
}
