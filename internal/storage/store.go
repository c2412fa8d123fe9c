// Package storage persists small client preferences (watchlist, theme flag)
// as string values under fixed keys, the way a browser's local storage does.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/wonny/techscreener/pkg/config"
	"github.com/wonny/techscreener/pkg/database"
	"github.com/wonny/techscreener/pkg/logger"
	"github.com/wonny/techscreener/pkg/redis"
)

// Persisted keys
const (
	KeyWatchlist = "watchlist"
	KeyDarkMode  = "darkMode"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous string key/value store
// ⭐ SSOT: 설정 저장소 인터페이스는 여기서만 정의
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the store selected by cfg.Storage.Backend
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (Store, error) {
	log = log.WithField("storage", cfg.Storage.Backend)

	switch cfg.Storage.Backend {
	case config.StorageFile:
		log.WithField("path", cfg.Storage.StateFile).Debug("Using file storage")
		return NewFileStore(cfg.Storage.StateFile)

	case config.StorageRedis:
		client, err := redis.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		log.Debug("Using redis storage")
		return NewRedisStore(client, cfg.Storage.KeyPrefix), nil

	case config.StoragePostgres:
		db, err := database.New(cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres storage: %w", err)
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		log.Debug("Using postgres storage")
		return store, nil
	}

	return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
}
