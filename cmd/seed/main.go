// Command seed prints a synthetic ledger, or writes it into the shared
// Redis session, for demos and fixtures.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
	"fraudeye/internal/repositories/cache"
	"fraudeye/internal/services/export"
	"fraudeye/internal/services/simulator"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	seed, err := strconv.ParseInt(config.GetEnv("SEED_RANDOM", "42"), 10, 64)
	if err != nil {
		log.Fatalf("SEED_RANDOM must be an integer: %v", err)
	}
	gen := simulator.New(seed, nil)

	switch target := strings.ToLower(config.GetEnv("SEED_TARGET", "stdout")); target {
	case "stdout":
		if err := printLedger(gen.Seed(cfg.SeedTransactions), config.GetEnv("SEED_FORMAT", "json")); err != nil {
			log.Fatalf("Failed to print ledger: %v", err)
		}
	case "store":
		if cfg.StoreBackend != config.StoreRedis {
			log.Fatal("SEED_TARGET=store requires STORE_BACKEND=redis")
		}
		client := cache.NewRedisClient(cache.RedisConfigFrom(cfg))
		defer func() {
			if err := client.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := cache.HealthCheck(ctx, client); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}

		store := repositories.NewRedisStore(client, cfg.SessionTTL)
		txns, alerts, err := gen.SeedStore(ctx, store, cfg.SeedTransactions)
		if err != nil {
			log.Fatalf("Failed to seed session: %v", err)
		}
		if txns == 0 {
			log.Println("Session already seeded")
			return
		}
		log.Printf("✅ Seeded %d transactions and %d alerts", txns, alerts)
	default:
		log.Fatalf("unknown SEED_TARGET %q", target)
	}
}

func printLedger(txns []models.Transaction, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		_, err := fmt.Fprintln(os.Stdout, export.CSV(txns))
		return err
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Transactions []models.Transaction `json:"transactions"`
			Alerts       []models.Alert       `json:"alerts"`
		}{txns, simulator.SeedAlerts(txns)})
	}
	return fmt.Errorf("unknown SEED_FORMAT %q", format)
}
