package models

import "time"

// Transaction statuses
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusBlocked  = "BLOCKED"
	StatusFlagged  = "FLAGGED"
)

// TransactionAttributes is the partial description of a transaction that is
// sent for classification. Every field may be absent.
type TransactionAttributes struct {
	Amount    *float64 `json:"amount,omitempty"`
	Merchant  string   `json:"merchant,omitempty"`
	Category  string   `json:"category,omitempty"`
	Location  string   `json:"location,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
}

// AmountOrZero returns the amount, treating an absent amount as 0.
func (a TransactionAttributes) AmountOrZero() float64 {
	if a.Amount == nil {
		return 0
	}
	return *a.Amount
}

// Transaction is a classified ledger entry held in the session store.
// Entries are never mutated once appended.
type Transaction struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Amount    float64 `json:"amount"`
	Merchant  string  `json:"merchant"`
	Category  string  `json:"category"`
	Location  string  `json:"location"`
	RiskScore float64 `json:"riskScore"`
	IsFraud   bool    `json:"isFraud"`
	Status    string  `json:"status"`
}

// Amount is a helper for building attributes from literals.
func Amount(v float64) *float64 {
	return &v
}

// TimestampLayout matches the millisecond UTC instants the dashboard emits.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
