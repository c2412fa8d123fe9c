package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/wonny/techscreener/internal/external/screenerapi"
	"github.com/wonny/techscreener/internal/filter"
	"github.com/wonny/techscreener/internal/screener"
	"github.com/wonny/techscreener/internal/storage"
	"github.com/wonny/techscreener/internal/theme"
	"github.com/wonny/techscreener/internal/watchlist"
	"github.com/wonny/techscreener/pkg/config"
	"github.com/wonny/techscreener/pkg/httputil"
	"github.com/wonny/techscreener/pkg/logger"
)

// app holds everything a command needs
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	store   storage.Store
	session *screener.Session
}

// newApp wires config, logger, storage and the session
func newApp(ctx context.Context) (*app, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Override from global flags
	if apiURL != "" {
		cfg.ScreenerAPI.BaseURL = strings.TrimRight(apiURL, "/")
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Open preference storage
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	// 4. Load persisted preferences
	wl, err := watchlist.Load(ctx, store, log)
	if err != nil {
		store.Close()
		return nil, err
	}
	th, err := theme.Load(ctx, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	// 5. Load filter presets (optional)
	var presets filter.Presets
	if cfg.PresetsFile != "" {
		presets, err = filter.LoadPresets(cfg.PresetsFile)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("load presets: %w", err)
		}
		log.WithField("presets", len(presets)).Debug("Filter presets loaded")
	}

	// 6. Create API client and session
	httpClient := httputil.New(cfg, log)
	api := screenerapi.NewClient(httpClient, cfg.ScreenerAPI.BaseURL, log)
	session := screener.New(api, wl, th, presets, log)

	return &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		session: session,
	}, nil
}

// Close releases the storage backend
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close storage")
	}
}
