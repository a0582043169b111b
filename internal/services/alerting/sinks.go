package alerting

import (
	"log"
	"strings"

	"fraudeye/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewPublisherFromConfig builds the sinks listed in cfg.AlertSinks. Sinks
// that cannot be set up are skipped with a warning. The returned func
// closes every opened connection.
func NewPublisherFromConfig(cfg *config.Config, redisClient *redis.Client) (*MultiPublisher, func()) {
	var sinks []Publisher
	var closers []func()

	for _, name := range cfg.AlertSinks {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "log":
			sinks = append(sinks, LogPublisher{})
		case "kafka":
			p := NewKafkaPublisher(NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAlertTopic))
			sinks = append(sinks, p)
			closers = append(closers, func() {
				if err := p.Close(); err != nil {
					log.Printf("⚠️ Failed to close kafka writer: %v", err)
				}
			})
		case "redis":
			if redisClient == nil {
				log.Println("⚠️ redis alert sink requested without a redis client, skipping")
				continue
			}
			sinks = append(sinks, NewRedisPublisher(redisClient, cfg.RedisAlertChannel))
		case "mqtt":
			c, err := ConnectMQTT(cfg.MQTTBroker, "fraudeye-"+uuid.NewString()[:8])
			if err != nil {
				log.Printf("⚠️ mqtt alert sink disabled: %v", err)
				continue
			}
			sinks = append(sinks, NewMQTTPublisher(c, cfg.MQTTAlertTopic))
			closers = append(closers, func() { c.Disconnect(250) })
		default:
			log.Printf("⚠️ unknown alert sink %q, skipping", name)
		}
	}

	return NewMultiPublisher(sinks...), func() {
		for _, c := range closers {
			c()
		}
	}
}
