package transaction

import "fraudeye/internal/models"

// IngestRequest is a transaction to classify and record. ID is optional.
type IngestRequest struct {
	ID         string
	Attributes models.TransactionAttributes
}

// IngestResult carries the stored transaction, the prediction behind it
// and the alert raised for it, if any.
type IngestResult struct {
	Transaction models.Transaction    `json:"transaction"`
	Prediction  models.RiskPrediction `json:"prediction"`
	Alert       *models.Alert         `json:"alert,omitempty"`
}

// SandboxRequest is the payload a client bank posts to the sandbox.
type SandboxRequest struct {
	TransactionID string   `json:"transaction_id"`
	Amount        *float64 `json:"amount"`
	Merchant      string   `json:"merchant"`
	Category      string   `json:"category"`
	Location      string   `json:"location"`
	Timestamp     string   `json:"timestamp"`
}
