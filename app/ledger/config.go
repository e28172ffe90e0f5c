package ledger

import "github.com/openpari/parimarket/models"

// Config represents the configuration for the ledger client
type Config struct {
	RPCEndpoint     string `env:"LEDGER_RPC_ENDPOINT"`
	ContractAddress string `env:"LEDGER_CONTRACT_ADDRESS"`
	ChainID         int64  `env:"LEDGER_CHAIN_ID" env-default:"31337"`
	PrivateKey      string `env:"LEDGER_PRIVATE_KEY"`

	Gas GasSchedule
}

// Validate validates the ledger configuration
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" || c.ContractAddress == "" {
		return models.ErrLedgerNotConfigured
	}
	if c.ChainID <= 0 {
		return models.ErrLedgerNotConfigured
	}
	return c.Gas.Validate()
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		ChainID: 31337,
		Gas:     DefaultGasSchedule(),
	}
}
