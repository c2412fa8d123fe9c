package storage

import (
	"context"

	"github.com/wonny/techscreener/pkg/redis"
)

// RedisStore persists preferences as plain Redis strings
type RedisStore struct {
	client *redis.Client
	kv     *redis.KV
}

// NewRedisStore wraps a connected client
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		kv:     redis.NewKV(client, prefix),
	}
}

// Get returns the stored value or ErrNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, found, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores value with no expiry
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.kv.Set(ctx, key, value)
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
