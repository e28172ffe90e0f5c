package settlement

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/internal/logger"
)

// Dependencies represent the dependencies needed for the settlement module
type Dependencies struct {
	DB     *gorm.DB
	Ledger ledger.Client
	Gas    ledger.GasSchedule
	Config *Config
	Logger logger.Logger
}

// Init initializes the settlement module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	metaRepo := metadata.NewRepository(deps.DB)
	sweeper := NewSweeper(deps.Ledger, deps.Config, deps.Logger)
	srvs := NewService(deps.Ledger, metaRepo, sweeper, deps.Config, deps.Gas, deps.Logger)
	handler := NewHandler(srvs)

	settlementGroup := r.Group("/settlement")
	settlementGroup.GET("/claimables/:address", handler.GetClaimables)
	settlementGroup.POST("/claims", handler.SubmitClaim)

	return srvs
}
