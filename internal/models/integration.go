package models

// IntegrationConfig is the client bank's callback configuration used by the API sandbox.
type IntegrationConfig struct {
	CallbackURL string `json:"callback_url"`
	APIKey      string `json:"api_key,omitempty"`
}

// Masked hides all but the first eight characters of the API key.
func (c IntegrationConfig) Masked() IntegrationConfig {
	if len(c.APIKey) > 8 {
		c.APIKey = c.APIKey[:8] + "..."
	}
	return c
}

// SandboxResponse is what the fraud engine returns to the calling bank.
type SandboxResponse struct {
	Status         string    `json:"status"`
	RiskScore      string    `json:"risk_score"`
	RiskLevel      RiskLevel `json:"risk_level"`
	ActionTaken    string    `json:"action_taken"`
	Reasons        []string  `json:"reasons"`
	ProcessingID   string    `json:"processing_id"`
	CallbackSentTo string    `json:"callback_sent_to"`
	TransactionID  string    `json:"transaction_id"`
	LatencyMillis  int64     `json:"latency_ms"`
}
