package models

// Alert severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// AlertIDPrefix prefixes the triggering transaction id.
const AlertIDPrefix = "alert_"

// Alert is raised once per fraudulent transaction. Read is the only field
// that changes after creation.
type Alert struct {
	ID            string `json:"id"`
	TransactionID string `json:"transactionId"`
	Timestamp     string `json:"timestamp"`
	Severity      string `json:"severity"`
	Message       string `json:"message"`
	Read          bool   `json:"read"`
}
