package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/pkg/config"
	"github.com/wonny/techscreener/pkg/logger"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(ctx, KeyWatchlist)
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.Set(ctx, KeyWatchlist, `["AAA","BBB"]`))
	require.NoError(t, store.Set(ctx, KeyDarkMode, "true"))

	// a fresh store sees what the first one flushed
	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, err := reopened.Get(ctx, KeyWatchlist)
	require.NoError(t, err)
	assert.Equal(t, `["AAA","BBB"]`, value)

	value, err = reopened.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), KeyDarkMode)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_File(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Backend:   config.StorageFile,
			StateFile: filepath.Join(t.TempDir(), "state.json"),
		},
	}

	store, err := Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStore)
	assert.True(t, ok)
}

func TestOpen_Unknown(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "sqlite"}}

	_, err := Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	// Skip if DATABASE_URL is not set
	if testing.Short() || os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	cfg := &config.Config{
		Storage:  config.StorageConfig{Backend: config.StoragePostgres},
		Database: config.DatabaseConfig{URL: os.Getenv("DATABASE_URL"), MaxConns: 2, MinConns: 1},
	}

	ctx := context.Background()
	store, err := Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(ctx, "test_key", "one"))
	require.NoError(t, store.Set(ctx, "test_key", "two"))

	value, err := store.Get(ctx, "test_key")
	require.NoError(t, err)
	assert.Equal(t, "two", value)

	_, err = store.Get(ctx, "missing_key")
	assert.ErrorIs(t, err, ErrNotFound)
}
