package deps

import (
	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/internal/cache"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/internal/security"
	"github.com/openpari/parimarket/models"
	"gorm.io/gorm"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	Ledger     ledger.Client
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Markets    cache.Cache[models.Market]

	services map[string]interface{}
}

func NewContainer(
	db *gorm.DB,
	ledgerClient ledger.Client,
	tokenMaker security.Maker,
	stripper sanitizer.HTMLStripperer,
	log logger.Logger,
	markets cache.Cache[models.Market],
) *Container {
	return &Container{
		DB:         db,
		Ledger:     ledgerClient,
		TokenMaker: tokenMaker,
		Sanitizer:  stripper,
		Logger:     log,
		Markets:    markets,
		services:   make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
