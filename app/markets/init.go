package markets

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/app/payout"
	"github.com/openpari/parimarket/internal/cache"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/models"
)

// Dependencies represent the dependencies needed for the markets module
type Dependencies struct {
	DB        *gorm.DB
	Ledger    ledger.Querier
	Snapshots cache.Cache[models.Market]
	Config    *Config
	Logger    logger.Logger
}

// Init initializes the markets module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	metaRepo := metadata.NewRepository(deps.DB)
	engine := payout.NewEngine()
	srvs := NewService(deps.Ledger, metaRepo, engine, deps.Snapshots, deps.Config, deps.Logger)
	handler := NewHandler(srvs)

	marketsGroup := r.Group("/markets")
	marketsGroup.GET("", handler.ListMarkets)
	marketsGroup.GET("/:marketId", handler.GetMarket)

	return srvs
}
