package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/wonny/techscreener/internal/storage"
	"github.com/wonny/techscreener/pkg/logger"
)

// Watchlist is the user's set of tickers, kept in insertion order and
// persisted under storage.KeyWatchlist after every mutation.
// ⭐ SSOT: 관심종목 상태는 이 구조체에서만 변경
type Watchlist struct {
	mu      sync.RWMutex
	tickers []string
	store   storage.Store
	logger  *logger.Logger
}

// Load reads the persisted watchlist. A missing key yields an empty list;
// an unreadable value is logged and also treated as empty.
func Load(ctx context.Context, store storage.Store, log *logger.Logger) (*Watchlist, error) {
	w := &Watchlist{
		tickers: []string{},
		store:   store,
		logger:  log,
	}

	raw, err := store.Get(ctx, storage.KeyWatchlist)
	if errors.Is(err, storage.ErrNotFound) {
		return w, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}

	var tickers []string
	if err := json.Unmarshal([]byte(raw), &tickers); err != nil {
		log.WithError(err).Warn("Ignoring unreadable persisted watchlist")
		return w, nil
	}

	// stale tickers are kept, duplicates are not
	seen := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		w.tickers = append(w.tickers, t)
	}

	return w, nil
}

// Toggle removes ticker when present, appends it otherwise, then persists the
// full list. The presence check, the mutation and the write happen under one
// lock so concurrent toggles cannot diverge from what is stored.
// On a failed write the in-memory change is rolled back.
func (w *Watchlist) Toggle(ctx context.Context, ticker string) (added bool, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.tickers

	idx := w.indexOf(ticker)
	if idx >= 0 {
		next := make([]string, 0, len(w.tickers)-1)
		next = append(next, w.tickers[:idx]...)
		next = append(next, w.tickers[idx+1:]...)
		w.tickers = next
	} else {
		next := make([]string, len(w.tickers), len(w.tickers)+1)
		copy(next, w.tickers)
		w.tickers = append(next, ticker)
		added = true
	}

	if err := w.persist(ctx); err != nil {
		w.tickers = prev
		return false, err
	}

	w.logger.WithFields(map[string]interface{}{
		"ticker": ticker,
		"added":  added,
		"count":  len(w.tickers),
	}).Debug("Watchlist toggled")

	return added, nil
}

// Contains reports whether ticker is on the watchlist
func (w *Watchlist) Contains(ticker string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexOf(ticker) >= 0
}

// Count returns the number of tickers, stale ones included
func (w *Watchlist) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.tickers)
}

// Tickers returns a copy of the list in insertion order
func (w *Watchlist) Tickers() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, len(w.tickers))
	copy(out, w.tickers)
	return out
}

// Set returns the membership as a set, for render lookups
func (w *Watchlist) Set() map[string]bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	set := make(map[string]bool, len(w.tickers))
	for _, t := range w.tickers {
		set[t] = true
	}
	return set
}

// indexOf must be called with the lock held
func (w *Watchlist) indexOf(ticker string) int {
	for i, t := range w.tickers {
		if t == ticker {
			return i
		}
	}
	return -1
}

// persist must be called with the write lock held
func (w *Watchlist) persist(ctx context.Context) error {
	data, err := json.Marshal(w.tickers)
	if err != nil {
		return fmt.Errorf("encode watchlist: %w", err)
	}
	if err := w.store.Set(ctx, storage.KeyWatchlist, string(data)); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	return nil
}
