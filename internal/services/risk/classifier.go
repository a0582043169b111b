package risk

import (
	"log"

	"fraudeye/internal/config"
)

// NewClassifier selects the classification strategy from the configuration.
// Without a credential the heuristic is used and no network call is made.
func NewClassifier(cfg *config.Config) Classifier {
	if !cfg.HasClassifierCredential() {
		log.Println("⚠️ GEMINI_API_KEY is not set, using heuristic risk classifier")
		return NewHeuristicClassifier(cfg.HeuristicDelay)
	}

	log.Printf("✅ Using Gemini risk classifier (model=%s, fail_policy=%s)", cfg.GeminiModel, cfg.FailPolicy)
	return NewRemoteClassifier(
		NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL),
		cfg.ClassifierTimeout,
		cfg.FailPolicy,
	)
}
