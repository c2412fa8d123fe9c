package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/techscreener/internal/screener"
	"github.com/wonny/techscreener/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	clientBuffer = 64
)

// Hub fans session change events out to every connected browser
// ⭐ SSOT: 웹소켓 연결 관리는 Hub에서만
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
	events  <-chan screener.Event
	cancel  func()
	logger  *logger.Logger
}

type wsClient struct {
	send chan screener.Event
	once sync.Once
}

func (c *wsClient) close() {
	c.once.Do(func() { close(c.send) })
}

// NewHub subscribes to session right away so no event is missed between
// construction and Run
func NewHub(session *screener.Session, log *logger.Logger) *Hub {
	events, cancel := session.Subscribe()
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		events:  events,
		cancel:  cancel,
		logger:  log,
	}
}

// Run forwards session events until ctx is done, then disconnects everyone
func (h *Hub) Run(ctx context.Context) {
	defer h.cancel()

	for {
		select {
		case ev, ok := <-h.events:
			if !ok {
				h.closeAll()
				return
			}
			h.broadcast(ev)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("clients", n).Debug("WebSocket client connected")
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		c.close()
	}
	h.mu.Unlock()
}

// broadcast drops clients that cannot keep up
func (h *Hub) broadcast(ev screener.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- ev:
		default:
			delete(h.clients, c)
			c.close()
			h.logger.Warn("Dropping slow WebSocket client")
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}

// ServeHTTP upgrades the connection and streams change events as JSON
// GET /ws
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &wsClient{send: make(chan screener.Event, clientBuffer)}
	h.register(client)

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

// readPump only handles control frames; the feed is one-way
func (h *Hub) readPump(conn *websocket.Conn, client *wsClient) {
	defer func() {
		h.unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Debug("WebSocket read error")
			}
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-client.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
