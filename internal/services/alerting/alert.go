package alerting

import (
	"fmt"
	"strconv"

	"fraudeye/internal/models"
)

// Alert origins
const (
	// OriginAPI is a transaction that came in through the engine API.
	OriginAPI = "api"
	// OriginSeed is a transaction from the seeded demo ledger.
	OriginSeed = "seed"
)

// MaybeCreateAlert returns the alert for a fraudulent transaction and nil
// otherwise. It has no side effects.
func MaybeCreateAlert(txn models.Transaction, origin string) *models.Alert {
	if !txn.IsFraud {
		return nil
	}
	return &models.Alert{
		ID:            models.AlertIDPrefix + txn.ID,
		TransactionID: txn.ID,
		Timestamp:     txn.Timestamp,
		Severity:      models.SeverityHigh,
		Message:       AlertMessage(txn, origin),
		Read:          false,
	}
}

// AlertMessage renders the alert text for txn. API alerts say so.
func AlertMessage(txn models.Transaction, origin string) string {
	prefix := "High risk transaction detected"
	if origin == OriginAPI {
		prefix += " via API"
	}
	return fmt.Sprintf("%s: %s ($%s)", prefix,
		txn.Merchant, strconv.FormatFloat(txn.Amount, 'f', -1, 64))
}
