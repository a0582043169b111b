package risk

import (
	"context"
	"time"

	"fraudeye/internal/models"
)

// HeuristicClassifier flags unusually large amounts without calling out.
type HeuristicClassifier struct {
	delay time.Duration
}

// NewHeuristicClassifier returns a classifier that resolves after delay.
func NewHeuristicClassifier(delay time.Duration) *HeuristicClassifier {
	return &HeuristicClassifier{delay: delay}
}

func (h *HeuristicClassifier) Strategy() string {
	return StrategyHeuristic
}

func (h *HeuristicClassifier) Classify(ctx context.Context, attrs models.TransactionAttributes) models.RiskPrediction {
	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}
	return HeuristicPrediction(attrs)
}

// HeuristicPrediction is the deterministic rule behind HeuristicClassifier.
func HeuristicPrediction(attrs models.TransactionAttributes) models.RiskPrediction {
	if attrs.AmountOrZero() > HighAmountThreshold {
		return models.RiskPrediction{
			IsFraud:     true,
			Confidence:  heuristicFraudConfidence,
			RiskLevel:   models.RiskCritical,
			Explanation: []string{ReasonHighAmount},
			Source:      models.SourceHeuristic,
		}
	}
	return models.RiskPrediction{
		IsFraud:     false,
		Confidence:  heuristicCleanConfidence,
		RiskLevel:   models.RiskLow,
		Explanation: []string{ReasonConsistentHistory, ReasonCategoryPassed},
		Source:      models.SourceHeuristic,
	}
}
