package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/config"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	domainRepo "github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/infrastructure/database"
	"github.com/sonsardina/framing-api/internal/infrastructure/repository"
	"github.com/sonsardina/framing-api/internal/presentation/http/handler"
	"github.com/sonsardina/framing-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	listPriceRepo := repository.NewListPriceRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	calculatedItemRepo := repository.NewCalculatedItemRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	engine := pricing.NewEngine(cfg.Pricing.IVA)
	fabric := service.FabricEntry(cfg.Pricing.FabricPriceM2, cfg.Pricing.FabricMinPrice)
	pricingService := service.NewPricingService(listPriceRepo, engine, fabric)
	calculatedItemService := service.NewCalculatedItemService(pricingService, calculatedItemRepo, cfg.Pricing.MaxConcurrency)
	orderService := service.NewOrderService(orderRepo, calculatedItemService)
	listPriceService := service.NewListPriceService(listPriceRepo)
	moldLoader := service.NewMoldPriceLoader(listPriceRepo, cfg.Storage.MoldSheetName)

	// Initialize handlers
	handlers := &routes.Handlers{
		Price: handler.NewPriceHandler(listPriceService, moldLoader, cfg.Storage.UploadMaxSize),
		Order: handler.NewOrderHandler(orderService),
	}

	rateLimiter := routes.NewRateLimiter(&cfg.RateLimit)
	defer rateLimiter.Stop()

	go purgeIdempotencyKeys(idempotencyRepo, time.Hour)

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s, IVA: %s", cfg.App.Env, engine.IVA())

	if err := router.Run(":" + port); err != nil {
		log.Printf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// purgeIdempotencyKeys removes expired idempotency keys every interval
func purgeIdempotencyKeys(repo domainRepo.IdempotencyRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			log.Printf("Warning: failed to purge idempotency keys: %v", err)
		}
	}
}
