package admin

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/security"
)

// Dependencies represent the dependencies needed for the admin module
type Dependencies struct {
	DB         *gorm.DB
	Ledger     ledger.Client
	Metadata   metadata.Service
	TokenMaker security.Maker
	Logger     logger.Logger

	// Wipers are the cache tables cleared by the full reset, in order.
	Wipers []Wiper

	// Policy overrides the default database-backed policy; used when the
	// caller shares one policy across route groups.
	Policy Policy

	// PolicyTTL bounds how long the resolver allow-list is cached.
	PolicyTTL time.Duration
}

const defaultPolicyTTL = 30 * time.Second

// Init initializes the admin module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.PolicyTTL <= 0 {
		deps.PolicyTTL = defaultPolicyTTL
	}

	repo := NewRepository(deps.DB)
	policy := deps.Policy
	if policy == nil {
		policy = NewPolicy(repo, deps.PolicyTTL)
	}
	srvs := NewService(repo, policy, deps.Ledger, deps.Metadata, deps.Wipers, deps.Logger)
	handler := NewHandler(srvs)

	adminGroup := r.Group("/admin")
	adminGroup.Use(RequireResolver(deps.TokenMaker, policy))
	adminGroup.POST("/markets", handler.CreateMarket)
	adminGroup.POST("/markets/resolve", handler.ResolveMarket)
	adminGroup.POST("/reset", handler.ResetAll)
	adminGroup.GET("/resolvers", handler.ListResolvers)
	adminGroup.POST("/resolvers", handler.AddResolver)
	adminGroup.PATCH("/resolvers/:id", handler.SetResolverActive)

	return srvs
}
