package risk

import (
	"context"
	"testing"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicClassifier_Classify(t *testing.T) {
	tests := []struct {
		name       string
		amount     *float64
		wantFraud  bool
		wantLevel  models.RiskLevel
		wantConf   float64
		wantReason string
	}{
		{"large amount", models.Amount(9000), true, models.RiskCritical, 0.92, ReasonHighAmount},
		{"just above threshold", models.Amount(5000.01), true, models.RiskCritical, 0.92, ReasonHighAmount},
		{"at threshold", models.Amount(5000), false, models.RiskLow, 0.05, ReasonConsistentHistory},
		{"small amount", models.Amount(120), false, models.RiskLow, 0.05, ReasonConsistentHistory},
		{"negative amount", models.Amount(-10), false, models.RiskLow, 0.05, ReasonConsistentHistory},
		{"absent amount", nil, false, models.RiskLow, 0.05, ReasonConsistentHistory},
	}

	c := NewHeuristicClassifier(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := c.Classify(context.Background(), models.TransactionAttributes{Amount: tt.amount})

			assert.Equal(t, tt.wantFraud, p.IsFraud)
			assert.Equal(t, tt.wantLevel, p.RiskLevel)
			assert.Equal(t, tt.wantConf, p.Confidence)
			require.NotEmpty(t, p.Explanation)
			assert.Equal(t, tt.wantReason, p.Explanation[0])
			assert.Equal(t, models.SourceHeuristic, p.Source)
		})
	}
}

func TestHeuristicClassifier_CleanExplanation(t *testing.T) {
	p := HeuristicPrediction(models.TransactionAttributes{Amount: models.Amount(10)})
	assert.Equal(t, []string{ReasonConsistentHistory, ReasonCategoryPassed}, p.Explanation)
}

func TestHeuristicClassifier_CancelledContextSkipsDelay(t *testing.T) {
	c := NewHeuristicClassifier(10 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	p := c.Classify(ctx, models.TransactionAttributes{Amount: models.Amount(6000)})

	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, p.IsFraud)
}

func TestHeuristicClassifier_WaitsForDelay(t *testing.T) {
	c := NewHeuristicClassifier(20 * time.Millisecond)

	start := time.Now()
	c.Classify(context.Background(), models.TransactionAttributes{})

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestNewClassifier_SelectsStrategy(t *testing.T) {
	cfg := &config.Config{HeuristicDelay: 0}
	assert.Equal(t, StrategyHeuristic, NewClassifier(cfg).Strategy())

	cfg.GeminiAPIKey = "key"
	cfg.GeminiModel = "gemini-2.5-flash"
	cfg.GeminiBaseURL = "http://127.0.0.1:1"
	assert.Equal(t, StrategyRemote, NewClassifier(cfg).Strategy())
}
