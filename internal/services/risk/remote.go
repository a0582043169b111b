package risk

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/models"
)

// RemoteClassifier asks an LLM for a structured fraud judgment.
type RemoteClassifier struct {
	generator ContentGenerator
	timeout   time.Duration
	policy    string
}

// NewRemoteClassifier wires a generator with a call timeout and failure policy.
func NewRemoteClassifier(generator ContentGenerator, timeout time.Duration, policy string) *RemoteClassifier {
	if generator == nil {
		panic("content generator is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if policy != config.FailClosed {
		policy = config.FailOpen
	}
	return &RemoteClassifier{
		generator: generator,
		timeout:   timeout,
		policy:    policy,
	}
}

func (r *RemoteClassifier) Strategy() string {
	return StrategyRemote
}

// Classify makes exactly one call. Failures are logged and mapped to the
// fallback prediction.
func (r *RemoteClassifier) Classify(ctx context.Context, attrs models.TransactionAttributes) models.RiskPrediction {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.generator.GenerateJSON(ctx, BuildPrompt(attrs), ResponseSchema)
	if err != nil {
		log.Printf("Gemini analysis failed: %v", err)
		return FallbackPrediction(r.policy)
	}

	payload, err := parsePayload(text)
	if err != nil {
		log.Printf("Gemini analysis failed: %v", err)
		return FallbackPrediction(r.policy)
	}

	return normalizePrediction(payload)
}

// FallbackPrediction is returned when the classifier cannot be reached or
// its answer cannot be parsed.
func FallbackPrediction(policy string) models.RiskPrediction {
	if policy == config.FailClosed {
		return models.RiskPrediction{
			IsFraud:     true,
			Confidence:  0,
			RiskLevel:   models.RiskHigh,
			Explanation: []string{ReasonUnavailable, ReasonManualReview},
			Source:      models.SourceFallback,
		}
	}
	return models.RiskPrediction{
		IsFraud:     false,
		Confidence:  0,
		RiskLevel:   models.RiskLow,
		Explanation: []string{ReasonUnavailable},
		Source:      models.SourceFallback,
	}
}

// BuildPrompt describes the transaction for the model.
func BuildPrompt(attrs models.TransactionAttributes) string {
	amount := "unknown"
	if attrs.Amount != nil {
		amount = "$" + strconv.FormatFloat(*attrs.Amount, 'f', 2, 64)
	}

	return fmt.Sprintf(`Act as a Credit Card Fraud Detection Expert. Analyze the following transaction data:

Amount: %s
Merchant: %s
Category: %s
Location: %s
Time: %s

Assess the risk of fraud. Return a JSON object with:
- isFraud (boolean)
- confidence (number 0.0 to 1.0)
- riskLevel (string: LOW, MEDIUM, HIGH, CRITICAL)
- explanation (array of strings, listing key risk factors like "High amount", "Unusual location", etc.)
`,
		amount,
		orUnknown(attrs.Merchant),
		orUnknown(attrs.Category),
		orUnknown(attrs.Location),
		orUnknown(attrs.Timestamp),
	)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
