package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/pkg/config"
)

func TestKV_Key(t *testing.T) {
	kv := NewKV(&Client{}, "screener")
	assert.Equal(t, "screener:pref:watchlist", kv.Key("watchlist"))
	assert.Equal(t, "screener:pref:darkMode", kv.Key("darkMode"))
}

func TestKV_RoundTrip(t *testing.T) {
	// Skip if REDIS_HOST is not set
	if testing.Short() || os.Getenv("REDIS_HOST") == "" {
		t.Skip("REDIS_HOST not set, skipping integration test")
	}

	cfg := &config.Config{
		Redis: config.RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: "6379",
		},
	}

	client, err := New(cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()
	kv := NewKV(client, "screener-test")
	defer kv.Delete(ctx, "watchlist")

	_, found, err := kv.Get(ctx, "watchlist")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "watchlist", `["AAA"]`))

	value, found, err := kv.Get(ctx, "watchlist")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `["AAA"]`, value)
}
