package models

// RiskLevel is the human-facing summary of a prediction.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevels lists every accepted level, lowest first.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// ParseRiskLevel reports whether s names a known risk level.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	for _, l := range RiskLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}

// Prediction sources
const (
	SourceHeuristic = "heuristic"
	SourceModel     = "model"
	SourceFallback  = "fallback"
)

// RiskPrediction is the typed outcome of a classification.
// Explanation is never nil.
type RiskPrediction struct {
	IsFraud     bool      `json:"isFraud"`
	Confidence  float64   `json:"confidence"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	Explanation []string  `json:"explanation"`
	Source      string    `json:"source,omitempty"`
}

// Status derives the ledger status for a transaction classified by p.
func (p RiskPrediction) Status() string {
	switch {
	case p.IsFraud && p.Source == SourceFallback:
		return StatusFlagged
	case p.IsFraud:
		return StatusBlocked
	default:
		return StatusApproved
	}
}
