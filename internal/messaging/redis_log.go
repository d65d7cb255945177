package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisLog keeps the session message log in a Redis list, one JSON document
// per record. RPUSH/LRANGE preserve insertion order.
type RedisLog struct {
	client *redis.Client
	key    string
}

// NewRedisLog creates a log backed by the given Redis list key.
func NewRedisLog(client *redis.Client, sessionID string) *RedisLog {
	return &RedisLog{
		client: client,
		key:    "petcrm:messages:" + sessionID,
	}
}

// Append pushes one record onto the tail of the list.
func (l *RedisLog) Append(rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := l.client.RPush(context.Background(), l.key, payload).Err(); err != nil {
		return fmt.Errorf("rpush record: %w", err)
	}
	return nil
}

// Records returns the full log in insertion order.
func (l *RedisLog) Records() ([]Record, error) {
	items, err := l.client.LRange(context.Background(), l.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange records: %w", err)
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Count returns the list length.
func (l *RedisLog) Count() (int, error) {
	n, err := l.client.LLen(context.Background(), l.key).Result()
	if err != nil {
		return 0, fmt.Errorf("llen records: %w", err)
	}
	return int(n), nil
}
