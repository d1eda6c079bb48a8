package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore persists one browser session's token in Redis.
// Key format: session:<session_id>. The TTL doubles as the session lifetime:
// a token untouched for longer than ttl simply disappears.
type RedisTokenStore struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

// NewRedisTokenStore creates a store scoped to sessionID.
func NewRedisTokenStore(client *redis.Client, sessionID string, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{client: client, sessionID: sessionID, ttl: ttl}
}

func (r *RedisTokenStore) Save(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key(), token, r.ttl).Err(); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}

func (r *RedisTokenStore) Load(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key()).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("session: redis get: %w", err)
	}
	// Sliding expiry: an active session stays alive.
	_ = r.client.Expire(ctx, r.key(), r.ttl).Err()
	return token, nil
}

func (r *RedisTokenStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

func (r *RedisTokenStore) key() string {
	return "session:" + r.sessionID
}
