package theme

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/wonny/techscreener/internal/storage"
)

// Icons shown on the toggle button
const (
	IconDark  = "☀️" // shown while dark mode is on
	IconLight = "🌙"
)

// Flag is the persisted dark/light theme switch
type Flag struct {
	mu    sync.Mutex
	dark  bool
	store storage.Store
}

// Load reads the persisted flag; anything but "true" means light
func Load(ctx context.Context, store storage.Store) (*Flag, error) {
	f := &Flag{store: store}

	raw, err := store.Get(ctx, storage.KeyDarkMode)
	if errors.Is(err, storage.ErrNotFound) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	f.dark = raw == "true"
	return f, nil
}

// Toggle flips the flag and persists it as "true"/"false"
func (f *Flag) Toggle(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := !f.dark
	if err := f.store.Set(ctx, storage.KeyDarkMode, strconv.FormatBool(next)); err != nil {
		return f.dark, fmt.Errorf("persist theme: %w", err)
	}
	f.dark = next
	return next, nil
}

// Dark reports whether dark mode is on
func (f *Flag) Dark() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark
}

// Attribute is the value of the document-level data-theme attribute,
// empty when the attribute should be absent
func (f *Flag) Attribute() string {
	if f.Dark() {
		return "dark"
	}
	return ""
}

// Icon returns the toggle button glyph
func (f *Flag) Icon() string {
	if f.Dark() {
		return IconDark
	}
	return IconLight
}
