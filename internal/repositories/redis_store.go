package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fraudeye/internal/config"
	"fraudeye/internal/models"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "fraudeye"

// RedisStore keeps the session in Redis lists so several server instances
// can share one dashboard session. Every write refreshes the session TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Backend() string {
	return config.StoreRedis
}

func sessionKey(parts ...string) string {
	k := redisKeyPrefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

var (
	txnListKey    = sessionKey("transactions")
	txnIndexKey   = sessionKey("transactions", "index")
	alertListKey  = sessionKey("alerts")
	alertDataKey  = sessionKey("alerts", "data")
	alertReadKey  = sessionKey("alerts", "read")
	allSessionKey = []string{txnListKey, txnIndexKey, alertListKey, alertDataKey, alertReadKey}
)

func (s *RedisStore) expire(ctx context.Context, pipe redis.Pipeliner) {
	if s.ttl <= 0 {
		return
	}
	for _, k := range allSessionKey {
		pipe.Expire(ctx, k, s.ttl)
	}
}

func (s *RedisStore) Append(ctx context.Context, txn models.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, txnListKey, data)
		pipe.HSet(ctx, txnIndexKey, txn.ID, data)
		s.expire(ctx, pipe)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]models.Transaction, error) {
	raw, err := s.client.LRange(ctx, txnListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	out := make([]models.Transaction, 0, len(raw))
	for _, item := range raw {
		var txn models.Transaction
		if err := json.Unmarshal([]byte(item), &txn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
		}
		out = append(out, txn)
	}
	return out, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Transaction, error) {
	data, err := s.client.HGet(ctx, txnIndexKey, id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	var txn models.Transaction
	if err := json.Unmarshal(data, &txn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}
	return &txn, nil
}

func (s *RedisStore) AppendAlert(ctx context.Context, alert models.Alert) error {
	alert.Read = false
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	created, err := s.client.HSetNX(ctx, alertDataKey, alert.ID, data).Result()
	if err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	if !created {
		return ErrDuplicateAlert
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, alertListKey, alert.ID)
		pipe.HSet(ctx, alertReadKey, alert.ID, "0")
		s.expire(ctx, pipe)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append alert: %w", err)
	}
	return nil
}

func (s *RedisStore) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	ids, err := s.client.LRange(ctx, alertListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	if len(ids) == 0 {
		return []models.Alert{}, nil
	}

	data, err := s.client.HMGet(ctx, alertDataKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}
	read, err := s.client.HGetAll(ctx, alertReadKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load alert read state: %w", err)
	}

	out := make([]models.Alert, 0, len(ids))
	for _, item := range data {
		str, ok := item.(string)
		if !ok {
			continue
		}
		var alert models.Alert
		if err := json.Unmarshal([]byte(str), &alert); err != nil {
			return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
		}
		alert.Read = read[alert.ID] == "1"
		out = append(out, alert)
	}
	return out, nil
}

func (s *RedisStore) MarkAlertRead(ctx context.Context, id string, read bool) (*models.Alert, error) {
	data, err := s.client.HGet(ctx, alertDataKey, id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	flag := "0"
	if read {
		flag = "1"
	}
	if err := s.client.HSet(ctx, alertReadKey, id, flag).Err(); err != nil {
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}

	var alert models.Alert
	if err := json.Unmarshal(data, &alert); err != nil {
		return nil, fmt.Errorf("failed to unmarshal alert: %w", err)
	}
	alert.Read = read
	return &alert, nil
}
