package screener

import (
	"sync"

	"github.com/wonny/techscreener/pkg/logger"
)

// EventKind names the part of the UI that has to redraw
type EventKind string

const (
	EventTable     EventKind = "table"
	EventStats     EventKind = "stats"
	EventSectors   EventKind = "sectors"
	EventFilters   EventKind = "filters"
	EventDetail    EventKind = "detail"
	EventWatchlist EventKind = "watchlist"
	EventTheme     EventKind = "theme"
)

// Event is an invalidation signal. It carries no state: subscribers re-read
// the session, so delivery order across goroutines does not change the result.
type Event struct {
	Kind   EventKind `json:"kind"`
	Ticker string    `json:"ticker,omitempty"` // set for EventDetail
}

const subscriberBuffer = 64

type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
	logger *logger.Logger
}

func newBroadcaster(log *logger.Logger) *broadcaster {
	return &broadcaster{
		subs:   make(map[int]chan Event),
		logger: log,
	}
}

func (b *broadcaster) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// publish never blocks: a subscriber whose buffer is full misses the event
func (b *broadcaster) publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.WithFields(map[string]interface{}{
				"subscriber": id,
				"event":      string(ev.Kind),
			}).Warn("Dropping change event for slow subscriber")
		}
	}
}
