// Package simulator generates synthetic transactions for demos and for
// seeding an empty session.
package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
	"fraudeye/internal/services/alerting"
)

var (
	seedMerchants  = []string{"Amazon", "Walmart", "Uber", "Starbucks", "Target"}
	seedCategories = []string{"Retail", "Dining", "Travel", "Groceries"}

	liveMerchants  = []string{"Amazon", "Netflix", "Apple Store", "Unknown Vendor", "Uber Eats", "Target", "Shell Station"}
	liveCategories = []string{"Retail", "Subscription", "Electronics", "Digital", "Dining", "Groceries", "Fuel"}
	safeLocations  = []string{"New York, US", "San Francisco, US", "London, UK"}
	riskyLocations = []string{"Moscow, RU", "Lagos, NG", "Paris, FR"}
)

const (
	seedFraudRate = 0.08
	liveFraudRate = 0.15
	seedWindow    = 7 * 24 * time.Hour
)

// Generator draws synthetic transactions from a random source. It is safe
// for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator seeded with seed. Equal seeds produce equal output
// for equal clocks.
func New(seed int64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now}
}

// Seed returns n historical transactions from the last seven days, most
// recent first, with ids txn_1000 upward.
func (g *Generator) Seed(n int) []models.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	txns := make([]models.Transaction, 0, n)
	for i := 0; i < n; i++ {
		isFraud := g.rng.Float64() < seedFraudRate
		at := now.Add(-time.Duration(g.rng.Float64() * float64(seedWindow)))

		txn := models.Transaction{
			ID:        fmt.Sprintf("txn_%d", 1000+i),
			Timestamp: models.FormatTimestamp(at),
			IsFraud:   isFraud,
		}
		if isFraud {
			txn.Amount = round2(g.rng.Float64() * 5000)
			txn.Merchant = "Unknown Overseas Vendor"
			txn.Category = "Electronics"
			txn.Location = "Lagos, NG"
			txn.RiskScore = 0.95
			txn.Status = models.StatusBlocked
		} else {
			txn.Amount = round2(g.rng.Float64() * 500)
			txn.Merchant = pick(g.rng, seedMerchants)
			txn.Category = pick(g.rng, seedCategories)
			txn.Location = "New York, US"
			txn.RiskScore = 0.02
			txn.Status = models.StatusApproved
		}
		txns = append(txns, txn)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Timestamp > txns[j].Timestamp
	})
	return txns
}

// Random returns one live transaction stamped now. offset disambiguates ids
// generated within the same millisecond.
func (g *Generator) Random(offset int) models.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	isFraud := g.rng.Float64() < liveFraudRate

	txn := models.Transaction{
		ID:        fmt.Sprintf("txn_%d_%d", now.UnixMilli(), offset),
		Timestamp: models.FormatTimestamp(now),
		Merchant:  pick(g.rng, liveMerchants),
		Category:  pick(g.rng, liveCategories),
		IsFraud:   isFraud,
	}
	if isFraud {
		txn.Amount = round2(g.rng.Float64()*2000 + 10)
		txn.Location = pick(g.rng, riskyLocations)
		txn.RiskScore = 0.85 + g.rng.Float64()*0.14
		txn.Status = models.StatusBlocked
	} else {
		txn.Amount = round2(g.rng.Float64()*200 + 10)
		txn.Location = pick(g.rng, safeLocations)
		txn.RiskScore = g.rng.Float64() * 0.1
		txn.Status = models.StatusApproved
	}
	return txn
}

// SeedAlerts derives the alerts for a seeded ledger, in ledger order.
func SeedAlerts(txns []models.Transaction) []models.Alert {
	var alerts []models.Alert
	for _, t := range txns {
		if a := alerting.MaybeCreateAlert(t, alerting.OriginSeed); a != nil {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SeedStore fills an empty store with n seeded transactions and their
// alerts. A store that already holds transactions is left alone.
func (g *Generator) SeedStore(ctx context.Context, store repositories.SessionStore, n int) (int, int, error) {
	if n <= 0 {
		return 0, 0, nil
	}
	existing, err := store.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to inspect session: %w", err)
	}
	if len(existing) > 0 {
		return 0, 0, nil
	}

	txns := g.Seed(n)
	// Append prepends, so walk oldest first to keep the ledger newest first.
	for i := len(txns) - 1; i >= 0; i-- {
		if err := store.Append(ctx, txns[i]); err != nil {
			return 0, 0, fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	alerts := SeedAlerts(txns)
	for i := len(alerts) - 1; i >= 0; i-- {
		if err := store.AppendAlert(ctx, alerts[i]); err != nil {
			return len(txns), 0, fmt.Errorf("failed to seed alert: %w", err)
		}
	}
	return len(txns), len(alerts), nil
}
