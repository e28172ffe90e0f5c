package proposal

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openpari/parimarket/internal/sanitizer"
)

// Dependencies represent the dependencies needed for the proposal module
type Dependencies struct {
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
}

// Init initializes the proposal module and mounts the public routes
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	repo := NewRepository(deps.DB)
	srvs := NewService(repo, deps.Sanitizer)
	handler := NewHandler(srvs, deps.Sanitizer)

	proposalsGroup := r.Group("/proposals")
	proposalsGroup.POST("", handler.Submit)

	return srvs
}

// InitReview mounts the review routes behind the caller's middleware chain.
func InitReview(r *gin.RouterGroup, srvs Service, s sanitizer.HTMLStripperer) {
	handler := NewHandler(srvs, s)

	proposalsGroup := r.Group("/proposals")
	proposalsGroup.GET("/pending", handler.GetPending)
	proposalsGroup.POST("/:id/approve", handler.Approve)
	proposalsGroup.POST("/:id/reject", handler.Reject)
}
