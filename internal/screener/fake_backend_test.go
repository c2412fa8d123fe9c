package screener

import (
	"context"
	"errors"
	"sync"

	"github.com/wonny/techscreener/internal/contracts"
)

var errBackendDown = errors.New("connection refused")

// fakeBackend serves canned responses and counts calls per endpoint
type fakeBackend struct {
	mu sync.Mutex

	stats   *contracts.Stats
	stocks  []contracts.Stock
	sectors []string
	screen  []contracts.Stock

	statsErr   error
	stocksErr  error
	sectorsErr error
	screenErr  error

	// screenGate, when set, blocks each Screen call until a value arrives
	screenGate chan []contracts.Stock

	calls    map[string]int
	criteria []contracts.FilterCriteria
}

func newFakeBackend(stocks []contracts.Stock) *fakeBackend {
	return &fakeBackend{
		stats:   &contracts.Stats{TotalStocks: len(stocks), AveragePE: 25.5, AverageSentiment: 0.61},
		stocks:  stocks,
		sectors: []string{"Semiconductors", "Software"},
		calls:   make(map[string]int),
	}
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeBackend) GetStats(_ context.Context) (*contracts.Stats, error) {
	f.record("stats")
	return f.stats, f.statsErr
}

func (f *fakeBackend) GetStocks(_ context.Context) ([]contracts.Stock, error) {
	f.record("stocks")
	if f.stocksErr != nil {
		return nil, f.stocksErr
	}
	return f.stocks, nil
}

func (f *fakeBackend) GetSectors(_ context.Context) ([]string, error) {
	f.record("sectors")
	if f.sectorsErr != nil {
		return nil, f.sectorsErr
	}
	return f.sectors, nil
}

func (f *fakeBackend) Screen(ctx context.Context, criteria contracts.FilterCriteria) ([]contracts.Stock, error) {
	f.record("screen")
	f.mu.Lock()
	f.criteria = append(f.criteria, criteria)
	gate := f.screenGate
	f.mu.Unlock()

	if gate != nil {
		select {
		case res := <-gate:
			return res, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.screenErr != nil {
		return nil, f.screenErr
	}
	return f.screen, nil
}
