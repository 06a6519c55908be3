package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sonsardina/framing-api/internal/config"
	domainRepo "github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/presentation/http/handler"
	"github.com/sonsardina/framing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Price *handler.PriceHandler
	Order *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// NewRateLimiter builds the API rate limiter from configuration:
// RATE_LIMIT_REQUESTS per RATE_LIMIT_DURATION seconds, bursting to the full count.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	duration := cfg.Duration
	if duration <= 0 {
		duration = 60
	}
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.Requests) / float64(duration),
		BurstSize:         cfg.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}

	registerPriceRoutes(v1, h)
	registerOrderRoutes(v1, h, deps)

	return router
}

func registerPriceRoutes(v1 *gin.RouterGroup, h *Handlers) {
	prices := v1.Group("/prices")
	{
		prices.GET("", h.Price.List)
		prices.GET("/formulas", h.Price.Formulas)
		prices.GET("/:internal_id", h.Price.Get)
		prices.POST("", h.Price.Create)
		prices.PUT("/:internal_id", h.Price.Update)
		prices.DELETE("/:internal_id", h.Price.Delete)
		prices.POST("/molds/import", h.Price.ImportMolds)
	}
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	v1.POST("/quotes", h.Order.Quote)

	orders := v1.Group("/orders")
	{
		if deps.IdempotencyRepo != nil {
			orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}), h.Order.Create)
		} else {
			orders.POST("", h.Order.Create)
		}
		orders.GET("/:id", h.Order.Get)
	}

	v1.POST("/items/:id/recalculate", h.Order.Recalculate)
}
