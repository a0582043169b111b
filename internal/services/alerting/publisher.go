package alerting

import (
	"context"
	"errors"
	"log"

	"fraudeye/internal/models"
)

var ErrPublishTimeout = errors.New("alert publish timed out")

// Publisher forwards a newly raised alert to an external sink.
type Publisher interface {
	Publish(ctx context.Context, alert *models.Alert) error
	Name() string
}

// MultiPublisher fans an alert out to every sink. A failing sink is logged
// and does not stop the others.
type MultiPublisher struct {
	sinks []Publisher
}

func NewMultiPublisher(sinks ...Publisher) *MultiPublisher {
	return &MultiPublisher{sinks: sinks}
}

func (m *MultiPublisher) Name() string {
	return "multi"
}

// Sinks returns the configured sink names.
func (m *MultiPublisher) Sinks() []string {
	names := make([]string, 0, len(m.sinks))
	for _, s := range m.sinks {
		names = append(names, s.Name())
	}
	return names
}

func (m *MultiPublisher) Publish(ctx context.Context, alert *models.Alert) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, alert); err != nil {
			log.Printf("⚠️ Failed to publish alert %s to %s: %v", alert.ID, s.Name(), err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes alerts to the application log.
type LogPublisher struct{}

func (LogPublisher) Name() string {
	return "log"
}

func (LogPublisher) Publish(ctx context.Context, alert *models.Alert) error {
	log.Printf("🚨 [%s] %s (txn=%s)", alert.Severity, alert.Message, alert.TransactionID)
	return nil
}
