package repositories

import (
	"context"
	"sync"

	"fraudeye/internal/config"
	"fraudeye/internal/models"
)

// MemoryStore keeps entries in insertion order and serves them reversed.
type MemoryStore struct {
	mu         sync.RWMutex
	txns       []models.Transaction
	alerts     []models.Alert
	alertIndex map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{alertIndex: make(map[string]int)}
}

func (s *MemoryStore) Backend() string {
	return config.StoreMemory
}

func (s *MemoryStore) Append(ctx context.Context, txn models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns = append(s.txns, txn)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, 0, len(s.txns))
	for i := len(s.txns) - 1; i >= 0; i-- {
		out = append(out, s.txns[i])
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.txns) - 1; i >= 0; i-- {
		if s.txns[i].ID == id {
			txn := s.txns[i]
			return &txn, nil
		}
	}
	return nil, ErrTransactionNotFound
}

func (s *MemoryStore) AppendAlert(ctx context.Context, alert models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.alertIndex[alert.ID]; ok {
		return ErrDuplicateAlert
	}
	s.alertIndex[alert.ID] = len(s.alerts)
	s.alerts = append(s.alerts, alert)
	return nil
}

func (s *MemoryStore) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, 0, len(s.alerts))
	for i := len(s.alerts) - 1; i >= 0; i-- {
		out = append(out, s.alerts[i])
	}
	return out, nil
}

func (s *MemoryStore) MarkAlertRead(ctx context.Context, id string, read bool) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.alertIndex[id]
	if !ok {
		return nil, ErrAlertNotFound
	}
	s.alerts[i].Read = read
	alert := s.alerts[i]
	return &alert, nil
}
