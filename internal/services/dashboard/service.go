package dashboard

import (
	"context"
	"fmt"
	"time"

	"fraudeye/internal/models"
	"fraudeye/internal/repositories"
)

// ChartDays is the length of the volume chart.
const ChartDays = 7

type Service interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type service struct {
	store repositories.SessionStore
	now   func() time.Time
}

func NewService(store repositories.SessionStore, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		store: store,
		now:   now,
	}
}

func (s *service) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	txns, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	alerts, err := s.store.ListAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	stats := Summarize(txns, s.now())
	for _, a := range alerts {
		if !a.Read {
			stats.UnreadAlerts++
		}
	}
	return stats, nil
}

// Summarize computes the headline totals and the daily chart over txns.
func Summarize(txns []models.Transaction, now time.Time) *models.DashboardStats {
	stats := &models.DashboardStats{
		TotalTransactions: len(txns),
		Daily:             dailySeries(txns, now),
	}

	for _, t := range txns {
		stats.TotalVolume += t.Amount
		if t.IsFraud {
			stats.FraudCount++
			stats.FraudVolume += t.Amount
		}
	}
	if stats.TotalTransactions > 0 {
		stats.AverageTransactionAmount = stats.TotalVolume / float64(stats.TotalTransactions)
	}
	return stats
}

// dailySeries buckets amounts into the ChartDays calendar days ending today, oldest first.
// Transactions outside the window or with unparseable timestamps are left out.
func dailySeries(txns []models.Transaction, now time.Time) []models.DailyPoint {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]models.DailyPoint, ChartDays)
	index := make(map[string]int, ChartDays)
	for i := 0; i < ChartDays; i++ {
		d := today.AddDate(0, 0, i-(ChartDays-1))
		date := d.Format(time.DateOnly)
		points[i] = models.DailyPoint{
			Name: d.Format("Mon"),
			Date: date,
		}
		index[date] = i
	}

	for _, t := range txns {
		ts, err := time.Parse(time.RFC3339, t.Timestamp)
		if err != nil {
			continue
		}
		i, ok := index[ts.UTC().Format(time.DateOnly)]
		if !ok {
			continue
		}
		points[i].Transactions += t.Amount
		if t.IsFraud {
			points[i].Fraud += t.Amount
		}
	}
	return points
}
