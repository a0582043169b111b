package alerting

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fraudeye/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const mqttQoS = 1

type mqttClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTPublisher publishes alerts to an MQTT topic at QoS 1.
type MQTTPublisher struct {
	client  mqttClient
	topic   string
	timeout time.Duration
}

// ConnectMQTT opens a broker connection for alert publishing.
func ConnectMQTT(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second)
	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect failed: %w", token.Error())
	}
	return c, nil
}

func NewMQTTPublisher(client mqttClient, topic string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topic, timeout: 5 * time.Second}
}

func (p *MQTTPublisher) Name() string {
	return "mqtt"
}

func (p *MQTTPublisher) Publish(ctx context.Context, alert *models.Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	token := p.client.Publish(p.topic, mqttQoS, false, data)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(p.timeout):
		return ErrPublishTimeout
	}
	return token.Error()
}
