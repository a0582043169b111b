package alerting

import (
	"context"
	"encoding/json"
	"fmt"

	"fraudeye/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher publishes alerts on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Name() string {
	return "redis"
}

func (p *RedisPublisher) Publish(ctx context.Context, alert *models.Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}
	return p.client.Publish(ctx, p.channel, data).Err()
}
