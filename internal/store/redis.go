package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an inactive session's scenarios survive.
const sessionTTL = 30 * 24 * time.Hour

// RedisStore persists saved scenarios in a Redis list per session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func sessionKey(sessionID string) string {
	return "mortcalc:session:" + sessionID
}

// Save appends a scenario to the session list and refreshes its TTL.
func (r *RedisStore) Save(ctx context.Context, sessionID string, scenario SavedScenario) error {
	data, err := json.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	key := sessionKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}
	return nil
}

// List returns the session's saved scenarios in insertion order.
func (r *RedisStore) List(ctx context.Context, sessionID string) ([]SavedScenario, error) {
	raw, err := r.client.LRange(ctx, sessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrNotFound
	}
	out := make([]SavedScenario, 0, len(raw))
	for _, item := range raw {
		var sc SavedScenario
		if err := json.Unmarshal([]byte(item), &sc); err != nil {
			return nil, fmt.Errorf("failed to decode scenario: %w", err)
		}
		out = append(out, sc)
	}
	return out, nil
}

// Clear removes the session entirely.
func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close releases the client connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
