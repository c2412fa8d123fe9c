package screener

import (
	"context"
	"errors"
	"sync"

	"github.com/wonny/techscreener/internal/contracts"
	"github.com/wonny/techscreener/internal/filter"
	"github.com/wonny/techscreener/internal/theme"
	"github.com/wonny/techscreener/internal/watchlist"
	"github.com/wonny/techscreener/pkg/logger"
)

var (
	// ErrStaleResponse is returned when a /screen response arrives after a newer Apply or Reset
	ErrStaleResponse = errors.New("stale screen response discarded")

	// ErrStockNotFound is returned when a ticker is not in the full list
	ErrStockNotFound = errors.New("stock not found")

	// ErrUnknownPreset is returned for a preset name that was never loaded
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrUnknownModal is returned when closing a modal that does not exist
	ErrUnknownModal = errors.New("unknown modal")
)

// Backend is the subset of the screener REST API the session needs
type Backend interface {
	GetStats(ctx context.Context) (*contracts.Stats, error)
	GetStocks(ctx context.Context) ([]contracts.Stock, error)
	GetSectors(ctx context.Context) ([]string, error)
	Screen(ctx context.Context, criteria contracts.FilterCriteria) ([]contracts.Stock, error)
}

// Session is the client state container: full list, working list, stats,
// sectors, the last submitted form and the modal flags, plus the watchlist
// and theme flag it coordinates. Every mutation publishes change events.
// ⭐ SSOT: 화면 상태는 Session을 통해서만 변경
type Session struct {
	mu sync.RWMutex

	all        []contracts.Stock
	filtered   []contracts.Stock
	stats      *contracts.Stats
	sectors    []string
	loadFailed bool
	form       filter.Form
	generation uint64

	detailTicker  string
	watchlistOpen bool

	api       Backend
	watchlist *watchlist.Watchlist
	theme     *theme.Flag
	presets   filter.Presets
	logger    *logger.Logger

	events *broadcaster
}

// New creates a session. presets may be nil.
func New(api Backend, wl *watchlist.Watchlist, th *theme.Flag, presets filter.Presets, log *logger.Logger) *Session {
	return &Session{
		all:       []contracts.Stock{},
		filtered:  []contracts.Stock{},
		sectors:   []string{},
		api:       api,
		watchlist: wl,
		theme:     th,
		presets:   presets,
		logger:    log,
		events:    newBroadcaster(log),
	}
}

// Snapshot is a consistent read-only copy of the session state.
// Stock slices are shared: lists are only ever replaced, never patched.
type Snapshot struct {
	All           []contracts.Stock
	Working       []contracts.Stock
	Stats         *contracts.Stats
	Sectors       []string
	LoadFailed    bool
	Form          filter.Form
	DetailTicker  string
	WatchlistOpen bool
}

// Snapshot returns the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		All:           s.all,
		Working:       s.filtered,
		Stats:         s.stats,
		Sectors:       s.sectors,
		LoadFailed:    s.loadFailed,
		Form:          s.form,
		DetailTicker:  s.detailTicker,
		WatchlistOpen: s.watchlistOpen,
	}
}

// Working returns the working list (what the table and the export show)
func (s *Session) Working() []contracts.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// Stock looks a ticker up in the full list
func (s *Session) Stock(ticker string) (contracts.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := contracts.FindByTicker(s.all, ticker)
	if st == nil {
		return contracts.Stock{}, ErrStockNotFound
	}
	return *st, nil
}

// Watchlist returns the watchlist store
func (s *Session) Watchlist() *watchlist.Watchlist {
	return s.watchlist
}

// Theme returns the theme flag
func (s *Session) Theme() *theme.Flag {
	return s.theme
}

// PresetNames lists loaded preset names, sorted
func (s *Session) PresetNames() []string {
	return s.presets.Names()
}

// Subscribe registers for change events. The returned cancel func must be
// called to release the subscription.
func (s *Session) Subscribe() (<-chan Event, func()) {
	return s.events.subscribe()
}

// ToggleWatchlist flips ticker's membership and persists it.
// The table and the watchlist count always redraw; the detail view redraws
// only when it is open on the same ticker.
func (s *Session) ToggleWatchlist(ctx context.Context, ticker string) (bool, error) {
	added, err := s.watchlist.Toggle(ctx, ticker)
	if err != nil {
		s.logger.WithError(err).WithField("ticker", ticker).Error("Failed to persist watchlist")
		return false, err
	}

	s.mu.RLock()
	detailOpen := s.detailTicker == ticker
	s.mu.RUnlock()

	s.events.publish(Event{Kind: EventTable})
	s.events.publish(Event{Kind: EventWatchlist})
	if detailOpen {
		s.events.publish(Event{Kind: EventDetail, Ticker: ticker})
	}

	return added, nil
}

// ToggleTheme flips and persists the theme flag
func (s *Session) ToggleTheme(ctx context.Context) (bool, error) {
	dark, err := s.theme.Toggle(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to persist theme")
		return dark, err
	}

	s.events.publish(Event{Kind: EventTheme})
	return dark, nil
}
