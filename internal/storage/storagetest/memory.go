// Package storagetest provides an in-memory storage.Store for tests
package storagetest

import (
	"context"
	"sync"

	"github.com/wonny/techscreener/internal/storage"
)

var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore keeps values in a map and counts successful writes so tests
// can check persistence happened exactly when expected
type MemoryStore struct {
	mu      sync.Mutex
	values  map[string]string
	writes  int
	failErr error
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value or storage.ErrNotFound
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

// Set stores value unless FailWrites is in effect
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failErr != nil {
		return s.failErr
	}
	s.values[key] = value
	s.writes++
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

// FailWrites makes every later Set return err; nil restores normal writes
func (s *MemoryStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failErr = err
}

// Writes returns the number of successful Set calls
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
