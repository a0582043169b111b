// Package main is the entry point for the FraudEye API server.
// It loads configuration, selects the risk classifier and session store,
// seeds the dashboard session and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/repositories"
	"fraudeye/internal/repositories/cache"
	"fraudeye/internal/routes"
	"fraudeye/internal/services/alerting"
	"fraudeye/internal/services/risk"
	"fraudeye/internal/services/simulator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	// Redis is shared by the session store and the redis alert sink.
	var redisClient *redis.Client
	if cfg.StoreBackend == config.StoreRedis || cfg.WantsSink("redis") {
		redisClient = cache.NewRedisClient(cache.RedisConfigFrom(cfg))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := cache.HealthCheck(ctx, redisClient)
		cancel()
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("✅ Successfully connected to Redis")
	}

	var store repositories.SessionStore
	if cfg.StoreBackend == config.StoreRedis {
		store = repositories.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		store = repositories.NewMemoryStore()
	}
	log.Printf("✅ Session store: %s", store.Backend())

	publisher, closeSinks := alerting.NewPublisherFromConfig(cfg, redisClient)
	log.Printf("✅ Alert sinks: %v", publisher.Sinks())

	defer func() {
		closeSinks()
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	generator := simulator.New(time.Now().UnixNano(), nil)
	if txns, alerts, err := generator.SeedStore(context.Background(), store, cfg.SeedTransactions); err != nil {
		log.Printf("⚠️ Failed to seed session: %v", err)
	} else if txns > 0 {
		log.Printf("✅ Seeded %d transactions and %d alerts", txns, alerts)
	}

	app := fiber.New(fiber.Config{
		AppName: "FraudEye API",
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Config:     cfg,
		Store:      store,
		Classifier: risk.NewClassifier(cfg),
		Publisher:  publisher,
		Generator:  generator,
		Redis:      redisClient,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Server shutdown error: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
