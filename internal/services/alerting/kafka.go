package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fraudeye/internal/models"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes alerts as JSON records keyed by transaction id.
type KafkaPublisher struct {
	writer messageWriter
}

// NewKafkaWriter builds a synchronous writer for the alert topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
		WriteTimeout: 5 * time.Second,
	}
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) Name() string {
	return "kafka"
}

func (p *KafkaPublisher) Publish(ctx context.Context, alert *models.Alert) error {
	value, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(alert.TransactionID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "severity", Value: []byte(alert.Severity)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write alert to kafka: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
