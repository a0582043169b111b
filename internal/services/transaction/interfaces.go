package transaction

import (
	"context"

	"fraudeye/internal/models"
)

// Generator produces synthetic transactions.
type Generator interface {
	Random(offset int) models.Transaction
}

// IntegrationProvider exposes the client callback configuration.
type IntegrationProvider interface {
	Get() models.IntegrationConfig
}

// Service runs transactions through classification into the session store.
type Service interface {
	Check(ctx context.Context, attrs models.TransactionAttributes) models.RiskPrediction
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)
	Sandbox(ctx context.Context, body []byte) (*models.SandboxResponse, error)
	Simulate(ctx context.Context, count int) ([]models.Transaction, error)
	Record(ctx context.Context, txn models.Transaction) (*models.Alert, error)
}
