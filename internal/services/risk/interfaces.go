package risk

import (
	"context"

	"fraudeye/internal/models"
)

// Classifier produces a prediction for partial transaction attributes.
// Implementations must always return a well-formed prediction.
type Classifier interface {
	Classify(ctx context.Context, attrs models.TransactionAttributes) models.RiskPrediction
	Strategy() string
}

// ContentGenerator sends a prompt to a model and returns the raw text answer.
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema map[string]interface{}) (string, error)
}
