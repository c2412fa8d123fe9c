package watchlist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/techscreener/internal/storage"
	"github.com/wonny/techscreener/internal/storage/storagetest"
	"github.com/wonny/techscreener/pkg/logger"
)

func persisted(t *testing.T, store storage.Store) string {
	t.Helper()
	value, err := store.Get(context.Background(), storage.KeyWatchlist)
	require.NoError(t, err)
	return value
}

func TestLoad_Empty(t *testing.T) {
	w, err := Load(context.Background(), storagetest.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, 0, w.Count())
	assert.Equal(t, []string{}, w.Tickers())
}

func TestLoad_Persisted(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyWatchlist, `["NVDA","GONE","NVDA","AMD"]`))

	w, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)

	// stale ticker GONE is tolerated, duplicate NVDA is dropped
	assert.Equal(t, []string{"NVDA", "GONE", "AMD"}, w.Tickers())
	assert.True(t, w.Contains("GONE"))
}

func TestLoad_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyWatchlist, `not json`))

	w, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, w.Count())
}

func TestToggle_AddThenRemove(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	w, err := Load(ctx, store, logger.Nop())
	require.NoError(t, err)

	added, err := w.Toggle(ctx, "AAA")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, w.Contains("AAA"))
	assert.Equal(t, 1, w.Count())
	assert.Equal(t, `["AAA"]`, persisted(t, store))

	added, err = w.Toggle(ctx, "AAA")
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, w.Contains("AAA"))

	// the pair returns to the original state and persists exactly that
	assert.Equal(t, []string{}, w.Tickers())
	assert.Equal(t, `[]`, persisted(t, store))
	assert.Equal(t, 2, store.Writes())
}

func TestToggle_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	w, _ := Load(ctx, store, logger.Nop())

	for _, ticker := range []string{"AAA", "BBB", "CCC"} {
		_, err := w.Toggle(ctx, ticker)
		require.NoError(t, err)
	}
	_, err := w.Toggle(ctx, "BBB")
	require.NoError(t, err)

	assert.Equal(t, []string{"AAA", "CCC"}, w.Tickers())
	assert.Equal(t, `["AAA","CCC"]`, persisted(t, store))
}

func TestToggle_WriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	w, _ := Load(ctx, store, logger.Nop())

	_, err := w.Toggle(ctx, "AAA")
	require.NoError(t, err)

	store.FailWrites(errors.New("quota exceeded"))
	_, err = w.Toggle(ctx, "BBB")
	require.Error(t, err)

	assert.Equal(t, []string{"AAA"}, w.Tickers())
	assert.False(t, w.Contains("BBB"))
}

func TestToggle_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := storagetest.NewMemoryStore()
	w, _ := Load(ctx, store, logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		ticker := fmt.Sprintf("T%02d", i%5)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.Toggle(ctx, ticker)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 20 toggles over 5 tickers = 4 each, so everything is back out
	assert.Equal(t, 0, w.Count())
	assert.Equal(t, `[]`, persisted(t, store))
	assert.Equal(t, 20, store.Writes())
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	w, _ := Load(ctx, storagetest.NewMemoryStore(), logger.Nop())
	_, _ = w.Toggle(ctx, "AAA")

	set := w.Set()
	assert.True(t, set["AAA"])
	assert.False(t, set["BBB"])
}
