package metadata

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/sanitizer"
)

// Dependencies represent the dependencies needed for the metadata module
type Dependencies struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Sanitizer   sanitizer.HTMLStripperer
	Logger      logger.Logger
	FeedChannel string
}

// Init initializes the metadata module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	repo := NewRepository(deps.DB)

	var feed Feed
	if deps.Redis != nil {
		feed = NewRedisFeed(deps.Redis, deps.FeedChannel)
	}

	srvs := NewService(repo, feed, deps.Sanitizer, deps.Logger)
	handler := NewHandler(srvs)

	metadataGroup := r.Group("/metadata")
	metadataGroup.GET("/resolved", handler.GetResolved)
	metadataGroup.GET("/:marketId", handler.GetMetadata)

	return srvs
}

// InitWrite mounts the metadata write route behind the caller's middleware
// chain; drafts overwrite display copy, so only resolvers may submit them.
func InitWrite(r *gin.RouterGroup, srvs Service) {
	handler := NewHandler(srvs)

	metadataGroup := r.Group("/metadata")
	metadataGroup.PUT("", handler.UpsertDraft)
}
