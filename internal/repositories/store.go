// Package repositories provides the session store backing the dashboard.
// Data lives for the lifetime of a session only; nothing is written to a
// database.
package repositories

import (
	"context"
	"errors"

	"fraudeye/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrDuplicateAlert      = errors.New("alert already exists")
)

// SessionStore holds the classified transactions and their alerts,
// most recent first.
type SessionStore interface {
	// Append inserts txn at the front, keeping prior entries in order.
	Append(ctx context.Context, txn models.Transaction) error
	List(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, id string) (*models.Transaction, error)

	AppendAlert(ctx context.Context, alert models.Alert) error
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	MarkAlertRead(ctx context.Context, id string, read bool) (*models.Alert, error)

	Backend() string
}
