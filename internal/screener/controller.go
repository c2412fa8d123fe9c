package screener

import (
	"context"
	"fmt"

	"github.com/wonny/techscreener/internal/filter"
)

// Apply submits form to /screen and makes the response the working list.
// Each call takes a new generation; a response that comes back after a newer
// Apply or Reset is dropped with ErrStaleResponse. On failure the working
// list is left unchanged.
func (s *Session) Apply(ctx context.Context, form filter.Form) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.form = form
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventFilters})

	return s.screen(ctx, form, gen)
}

// screen sends form to /screen and installs the response only while gen is
// still the latest generation. It never touches the stored form.
func (s *Session) screen(ctx context.Context, form filter.Form, gen uint64) error {
	stocks, err := s.api.Screen(ctx, form.Criteria())
	if err != nil {
		s.logger.WithError(err).Error("Error applying filters")
		return fmt.Errorf("apply filters: %w", err)
	}

	s.mu.Lock()
	if gen != s.generation {
		latest := s.generation
		s.mu.Unlock()
		s.logger.WithFields(map[string]interface{}{
			"generation": gen,
			"latest":     latest,
		}).Debug("Discarding stale screen response")
		return ErrStaleResponse
	}
	s.filtered = stocks
	s.loadFailed = false
	s.mu.Unlock()

	s.logger.WithField("count", len(stocks)).Debug("Filters applied")
	s.events.publish(Event{Kind: EventTable})
	return nil
}

// ApplyPreset applies a named preset form
func (s *Session) ApplyPreset(ctx context.Context, name string) error {
	preset, ok := s.presets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return s.Apply(ctx, preset.Filters)
}

// Reset clears every filter input and shows the full list again.
// No backend call is made. Pending Apply responses become stale.
func (s *Session) Reset() {
	s.mu.Lock()
	s.generation++
	s.form = filter.Form{}
	s.filtered = s.all
	s.loadFailed = false
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventFilters})
	s.events.publish(Event{Kind: EventTable})
}

// Form returns the last submitted form
func (s *Session) Form() filter.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}
