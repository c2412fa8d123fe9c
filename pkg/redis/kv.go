package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// KV provides prefixed string key/value access without expiry
// ⭐ SSOT: 설정값(watchlist, darkMode) Redis 키 규칙은 여기서만
type KV struct {
	client *Client
	prefix string
}

// NewKV creates a new KV helper
func NewKV(client *Client, prefix string) *KV {
	return &KV{
		client: client,
		prefix: prefix,
	}
}

// Key returns the full Redis key for a preference key
func (k *KV) Key(key string) string {
	return fmt.Sprintf("%s:pref:%s", k.prefix, key)
}

// Get retrieves a value. found is false when the key does not exist.
func (k *KV) Get(ctx context.Context, key string) (value string, found bool, err error) {
	value, err = k.client.Redis().Get(ctx, k.Key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a value with no TTL
func (k *KV) Set(ctx context.Context, key string, value string) error {
	if err := k.client.Redis().Set(ctx, k.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes a value
func (k *KV) Delete(ctx context.Context, key string) error {
	return k.client.Redis().Del(ctx, k.Key(key)).Err()
}
