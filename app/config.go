package app

import (
	"time"

	"github.com/openpari/parimarket/app/database"
	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/markets"
	"github.com/openpari/parimarket/app/settlement"
	"github.com/openpari/parimarket/internal/nexus"
)

type Config struct {
	DB         database.Config
	Ledger     ledger.Config
	Settlement settlement.Config
	Markets    markets.Config

	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	// TokenSymmetricKey is the 32-byte key resolver session tokens are
	// encrypted with.
	TokenSymmetricKey string `env:"TOKEN_SYMMETRIC_KEY"`

	// PolicyTTL bounds how long the resolver allow-list is cached.
	PolicyTTL time.Duration `env:"RESOLVER_POLICY_TTL" env-default:"30s"`

	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	MetadataFeedChannel string `env:"METADATA_FEED_CHANNEL"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
