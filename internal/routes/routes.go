// Package routes wires the services into the HTTP API.
package routes

import (
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/handlers"
	"fraudeye/internal/middleware"
	"fraudeye/internal/repositories"
	"fraudeye/internal/services/alerting"
	"fraudeye/internal/services/auth"
	"fraudeye/internal/services/dashboard"
	"fraudeye/internal/services/integration"
	"fraudeye/internal/services/risk"
	"fraudeye/internal/services/transaction"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/redis/go-redis/v9"
)

// Dependencies are built once in main and shared by every handler.
type Dependencies struct {
	Config     *config.Config
	Store      repositories.SessionStore
	Classifier risk.Classifier
	Publisher  *alerting.MultiPublisher
	Generator  transaction.Generator
	// Redis is nil unless a Redis backed component is in use.
	Redis *redis.Client
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	cfg := deps.Config

	integrationService := integration.NewService()
	cfgTx := transaction.Config{
		Classifier:  deps.Classifier,
		Store:       deps.Store,
		Generator:   deps.Generator,
		Integration: integrationService,

		PublishTimeout: cfg.AlertPublishTimeout,
	}
	if deps.Publisher != nil {
		cfgTx.Publisher = deps.Publisher
	}
	txService := transaction.NewService(cfgTx)
	authService := auth.NewService(cfg.JWTSecret, cfg.SessionTokenTTL)
	dashboardService := dashboard.NewService(deps.Store, nil)

	var sinks []string
	if deps.Publisher != nil {
		sinks = deps.Publisher.Sinks()
	}
	info := handlers.SystemInfo{
		Classifier: deps.Classifier.Strategy(),
		FailPolicy: cfg.FailPolicy,
		Store:      deps.Store.Backend(),
		AlertSinks: sinks,
	}
	if info.Classifier == risk.StrategyRemote {
		info.Model = cfg.GeminiModel
	}
	info.Environment = "development"
	if config.IsProduction() {
		info.Environment = "production"
	}

	healthHandler := handlers.NewHealthHandler(info.Classifier, info.Store, deps.Redis)
	authHandler := handlers.NewAuthHandler(authService)
	riskHandler := handlers.NewRiskHandler(txService)
	integrationHandler := handlers.NewIntegrationHandler(integrationService)
	transactionHandler := handlers.NewTransactionHandler(deps.Store, txService)
	alertHandler := handlers.NewAlertHandler(deps.Store)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(info)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to FraudEye API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Restores the session user when a token is sent; nothing is enforced.
	api := app.Group("/api", middleware.NewSessionMiddleware(authService).Handler)
	api.Get("/health", healthHandler.HealthCheck)

	// Session stub
	api.Post("/login", authHandler.LoginUser)
	api.Post("/register", authHandler.RegisterUser)
	api.Get("/session", authHandler.GetSession)

	// Classification
	classify := rateLimit(cfg.RateLimitPerMinute)
	api.Post("/fraud-check", classify, riskHandler.FraudCheck)
	api.Post("/sandbox/transactions", classify, riskHandler.SandboxTransaction)

	integrations := api.Group("/integrations")
	integrations.Get("/config", integrationHandler.GetConfig)
	integrations.Put("/config", integrationHandler.UpdateConfig)

	// Ledger. Static paths are registered before /:id.
	transactions := api.Group("/transactions")
	transactions.Get("/", transactionHandler.GetTransactions)
	transactions.Get("/export", transactionHandler.ExportTransactions)
	transactions.Post("/simulate", transactionHandler.SimulateTransactions)
	transactions.Get("/:id", transactionHandler.GetTransaction)

	alerts := api.Group("/alerts")
	alerts.Get("/", alertHandler.GetAlerts)
	alerts.Patch("/:id/read", alertHandler.MarkAlertRead)

	api.Get("/dashboard/stats", dashboardHandler.GetStats)
	api.Get("/admin/system", adminHandler.GetSystem)
}

// rateLimit limits classification calls per client IP. max <= 0 disables it.
func rateLimit(max int) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
