package export

import (
	"strconv"
	"strings"
	"time"

	"fraudeye/internal/models"
)

// Status filters
const (
	StatusAll   = "ALL"
	StatusFraud = "FRAUD"
	StatusLegit = "LEGIT"
	// StatusClean is accepted as an alias of StatusLegit.
	StatusClean = "CLEAN"
)

// Header is the first line of every export.
var Header = []string{"Transaction ID", "Merchant", "Category", "Date", "Amount", "Status", "Risk Score", "Fraud Detected"}

// Filter narrows the ledger the way the transactions table does.
type Filter struct {
	Query  string
	Status string
}

// Normalize upper-cases the status and maps unknown values to StatusAll.
func (f Filter) Normalize() Filter {
	f.Query = strings.TrimSpace(f.Query)
	switch s := strings.ToUpper(strings.TrimSpace(f.Status)); s {
	case StatusFraud, StatusLegit:
		f.Status = s
	case StatusClean:
		f.Status = StatusLegit
	default:
		f.Status = StatusAll
	}
	return f
}

// Match reports whether txn passes the filter. The query matches the
// merchant or the id, case-insensitively.
func (f Filter) Match(txn models.Transaction) bool {
	f = f.Normalize()
	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(txn.Merchant), q) && !strings.Contains(strings.ToLower(txn.ID), q) {
			return false
		}
	}
	switch f.Status {
	case StatusFraud:
		return txn.IsFraud
	case StatusLegit:
		return !txn.IsFraud
	}
	return true
}

// Apply returns the transactions that match, preserving order.
func Apply(txns []models.Transaction, f Filter) []models.Transaction {
	out := make([]models.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// CSV renders txns as newline separated rows with no trailing newline.
// The merchant column is always quoted.
func CSV(txns []models.Transaction) string {
	lines := make([]string, 0, len(txns)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, t := range txns {
		fraud := "No"
		if t.IsFraud {
			fraud = "Yes"
		}
		lines = append(lines, strings.Join([]string{
			t.ID,
			quote(t.Merchant),
			t.Category,
			t.Timestamp,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Status,
			strconv.FormatFloat(t.RiskScore, 'f', 2, 64),
			fraud,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// Filename is the attachment name for an export produced on day.
func Filename(day time.Time) string {
	return "transactions_" + day.UTC().Format(time.DateOnly) + ".csv"
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
