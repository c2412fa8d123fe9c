package screener

import (
	"fmt"

	"github.com/wonny/techscreener/internal/contracts"
)

// Modal names
const (
	ModalDetail    = "detail"
	ModalWatchlist = "watchlist"
)

// OpenDetail opens the detail modal on a stock from the full list
func (s *Session) OpenDetail(ticker string) error {
	s.mu.Lock()
	if contracts.FindByTicker(s.all, ticker) == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrStockNotFound, ticker)
	}
	s.detailTicker = ticker
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventDetail, Ticker: ticker})
	return nil
}

// OpenWatchlist opens the watchlist modal
func (s *Session) OpenWatchlist() {
	s.mu.Lock()
	s.watchlistOpen = true
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventWatchlist})
}

// ViewFromWatchlist swaps the watchlist modal for the detail modal on ticker
func (s *Session) ViewFromWatchlist(ticker string) error {
	s.mu.Lock()
	if contracts.FindByTicker(s.all, ticker) == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrStockNotFound, ticker)
	}
	s.watchlistOpen = false
	s.detailTicker = ticker
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventWatchlist})
	s.events.publish(Event{Kind: EventDetail, Ticker: ticker})
	return nil
}

// CloseModal closes a modal by name. Closing a closed modal is a no-op.
// Both modals may be open at once; closing one leaves the other.
func (s *Session) CloseModal(name string) error {
	s.mu.Lock()
	switch name {
	case ModalDetail:
		s.detailTicker = ""
	case ModalWatchlist:
		s.watchlistOpen = false
	default:
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownModal, name)
	}
	s.mu.Unlock()

	kind := EventDetail
	if name == ModalWatchlist {
		kind = EventWatchlist
	}
	s.events.publish(Event{Kind: kind})
	return nil
}
