package screener

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/techscreener/internal/contracts"
)

// LoadStats fetches summary statistics. On failure the previous stats stay.
func (s *Session) LoadStats(ctx context.Context) error {
	stats, err := s.api.GetStats(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Error loading stats")
		return fmt.Errorf("load stats: %w", err)
	}

	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventStats})
	return nil
}

// LoadStocks fetches the full list and makes it the working list.
// On failure the table switches to its error state.
func (s *Session) LoadStocks(ctx context.Context) error {
	stocks, err := s.api.GetStocks(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Error loading stocks")

		s.mu.Lock()
		s.loadFailed = true
		s.mu.Unlock()

		s.events.publish(Event{Kind: EventTable})
		return fmt.Errorf("load stocks: %w", err)
	}

	s.mu.Lock()
	s.all = stocks
	s.filtered = stocks
	s.loadFailed = false
	s.mu.Unlock()

	s.logger.WithField("count", len(stocks)).Info("Stocks loaded")
	s.events.publish(Event{Kind: EventTable})
	return nil
}

// LoadSectors fetches the sector names. On failure the previous list stays.
func (s *Session) LoadSectors(ctx context.Context) error {
	sectors, err := s.api.GetSectors(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Error loading sectors")
		return fmt.Errorf("load sectors: %w", err)
	}

	s.mu.Lock()
	s.sectors = sectors
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventSectors})
	return nil
}

// LoadAll runs the startup sequence: stats, stocks, sectors.
// Each step runs regardless of earlier failures.
func (s *Session) LoadAll(ctx context.Context) error {
	return errors.Join(
		s.LoadStats(ctx),
		s.LoadStocks(ctx),
		s.LoadSectors(ctx),
	)
}

// Refresh reloads everything in the background, the three requests in
// parallel. Unlike LoadStocks a failed stock fetch keeps the current table.
// When a filter is active the current form is screened again without taking
// a new generation, so the working list stays filtered.
func (s *Session) Refresh(ctx context.Context) error {
	var (
		g                    errgroup.Group
		stocks               []contracts.Stock
		errStats, errSectors error
		errStocks            error
	)

	g.Go(func() error {
		errStats = s.LoadStats(ctx)
		return errStats
	})
	g.Go(func() error {
		errSectors = s.LoadSectors(ctx)
		return errSectors
	})
	g.Go(func() error {
		stocks, errStocks = s.api.GetStocks(ctx)
		return errStocks
	})
	_ = g.Wait() // every error is reported below, not just the first

	if errStocks != nil {
		s.logger.WithError(errStocks).Warn("Refresh: keeping previous stock list")
		return errors.Join(errStats, errSectors, fmt.Errorf("refresh stocks: %w", errStocks))
	}

	s.mu.Lock()
	s.all = stocks
	s.loadFailed = false
	form, gen := s.form, s.generation
	filtering := !form.Criteria().IsEmpty()
	if !filtering {
		s.filtered = stocks
	}
	s.mu.Unlock()

	if !filtering {
		s.events.publish(Event{Kind: EventTable})
		return errors.Join(errStats, errSectors)
	}

	// re-screen under the generation read above; a user Apply or Reset that
	// lands meanwhile wins and this response is dropped
	if err := s.screen(ctx, form, gen); err != nil && !errors.Is(err, ErrStaleResponse) {
		return errors.Join(errStats, errSectors, err)
	}
	return errors.Join(errStats, errSectors)
}
