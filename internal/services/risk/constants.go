package risk

import "time"

// Strategy names
const (
	StrategyHeuristic = "heuristic"
	StrategyRemote    = "remote"
)

const (
	// HighAmountThreshold is the amount above which the heuristic flags fraud.
	HighAmountThreshold = 5000.0

	heuristicFraudConfidence = 0.92
	heuristicCleanConfidence = 0.05

	DefaultTimeout = 15 * time.Second
)

// Explanation strings
const (
	ReasonHighAmount        = "Unusually high transaction amount compared to historical average."
	ReasonConsistentHistory = "Transaction amount and location appear consistent with user history."
	ReasonCategoryPassed    = "Merchant category check passed."
	ReasonIncomplete        = "Analysis incomplete"
	ReasonUnavailable       = "AI Analysis unavailable due to connection error."
	ReasonManualReview      = "Transaction held for manual review."
)
