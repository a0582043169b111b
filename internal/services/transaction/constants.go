package transaction

import "time"

// Sandbox decisions returned to the calling bank
const (
	DecisionDeclined = "DECLINED"
	DecisionApproved = "APPROVED"

	ActionBlock = "BLOCK_TRANSACTION"
	ActionAllow = "ALLOW_TRANSACTION"
	ActionHold  = "HOLD_FOR_REVIEW"
)

const (
	TransactionIDPrefix = "txn_"
	ProcessingIDPrefix  = "req_"

	DefaultSimulateCount = 1
	MaxSimulateCount     = 20
)

// DefaultPublishTimeout is how long a request waits on the alert sinks.
const DefaultPublishTimeout = 2 * time.Second
