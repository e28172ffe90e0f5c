package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/openpari/parimarket/app"
	"github.com/openpari/parimarket/app/admin"
	"github.com/openpari/parimarket/app/api"
	"github.com/openpari/parimarket/app/database"
	"github.com/openpari/parimarket/app/ledger"
	"github.com/openpari/parimarket/app/markets"
	"github.com/openpari/parimarket/app/metadata"
	"github.com/openpari/parimarket/app/proposal"
	"github.com/openpari/parimarket/app/settlement"
	"github.com/openpari/parimarket/internal/cache"
	"github.com/openpari/parimarket/internal/deps"
	"github.com/openpari/parimarket/internal/logger"
	"github.com/openpari/parimarket/internal/sanitizer"
	"github.com/openpari/parimarket/internal/security"
	"github.com/openpari/parimarket/models"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zlog := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"service": "parimarket"})

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	ledgerClient, err := ledger.NewEVMClient(&cfg.Ledger)
	if err != nil {
		log.Fatal("Failed to create ledger client:", err)
	}
	defer ledgerClient.Close()

	tokenMaker, err := security.NewPasetoMaker(cfg.TokenSymmetricKey)
	if err != nil {
		log.Fatal("cannot create token maker:", err)
	}

	var rdb *redis.Client
	snapshots := cache.NewCache[models.Market](cache.MemoryBackend)
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		snapshots = cache.NewCache[models.Market](cache.RedisBackend, &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	container := deps.NewContainer(db, ledgerClient, tokenMaker, sanitizer.NewHTMLStripper(), zlog, snapshots)

	r := gin.Default()
	r.Use(api.CorsMiddleware())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	metadataSrv := metadata.Init(apiV1, metadata.Dependencies{
		DB:          container.DB,
		Redis:       rdb,
		Sanitizer:   container.Sanitizer,
		Logger:      container.Logger,
		FeedChannel: cfg.MetadataFeedChannel,
	})
	container.RegisterService("metadata", metadataSrv)

	markets.Init(apiV1, markets.Dependencies{
		DB:        container.DB,
		Ledger:    container.Ledger,
		Snapshots: container.Markets,
		Config:    &cfg.Markets,
		Logger:    container.Logger,
	})

	settlement.Init(apiV1, settlement.Dependencies{
		DB:     container.DB,
		Ledger: container.Ledger,
		Gas:    cfg.Ledger.Gas,
		Config: &cfg.Settlement,
		Logger: container.Logger,
	})

	proposalSrv := proposal.Init(apiV1, proposal.Dependencies{
		DB:        container.DB,
		Sanitizer: container.Sanitizer,
	})
	container.RegisterService("proposal", proposalSrv)

	policy := admin.NewPolicy(admin.NewRepository(container.DB), cfg.PolicyTTL)
	admin.Init(apiV1, admin.Dependencies{
		DB:         container.DB,
		Ledger:     container.Ledger,
		Metadata:   metadataSrv,
		TokenMaker: container.TokenMaker,
		Logger:     container.Logger,
		Wipers:     []admin.Wiper{metadataSrv, proposalSrv},
		Policy:     policy,
	})

	reviewGroup := apiV1.Group("/")
	reviewGroup.Use(admin.RequireResolver(container.TokenMaker, policy))
	proposal.InitReview(reviewGroup, container.GetService("proposal").(proposal.Service), container.Sanitizer)
	metadata.InitWrite(reviewGroup, metadataSrv)

	zlog.Info("starting api server", logger.Fields{"host": cfg.AppHost, "port": cfg.AppPort})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
