package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

const (
	writeWait   = 5 * time.Second
	sendBacklog = 64
)

// Hub broadcasts gameplay events as JSON text frames to every connected
// websocket subscriber. Slow subscribers lose events instead of stalling
// the game loop.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
	closed      bool
	dropped     int
	logger      *log.Logger
	upgrader    websocket.Upgrader
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (s *subscriber) close() {
	s.once.Do(func() { close(s.send) })
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = discardLogger()
	}
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP upgrades the request and streams events until the peer leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	sub := &subscriber{conn: conn, send: make(chan []byte, sendBacklog)}
	if !h.register(sub) {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down")
		conn.WriteMessage(websocket.CloseMessage, msg) //nolint:errcheck
		conn.Close()
		return
	}
	h.logger.Debug("subscriber joined", "remote", r.RemoteAddr)

	go h.writeLoop(sub)

	// Incoming frames are ignored; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(sub)
	h.logger.Debug("subscriber left", "remote", r.RemoteAddr)
}

func (h *Hub) writeLoop(sub *subscriber) {
	defer sub.conn.Close()
	for data := range sub.send {
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck
		if err := sub.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.unregister(sub)
			return
		}
	}
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	sub.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)) //nolint:errcheck
}

func (h *Hub) register(sub *subscriber) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.subscribers[sub] = struct{}{}
	return true
}

func (h *Hub) unregister(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subscribers[sub]
	delete(h.subscribers, sub)
	h.mu.Unlock()
	if ok {
		sub.close()
	}
}

// Notify encodes e and queues it for every subscriber without blocking.
func (h *Hub) Notify(e memerun.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		h.logger.Error("failed to marshal event", "kind", e.Kind, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.send <- data:
		default:
			h.dropped++
		}
	}
}

// Subscribers returns the number of connected peers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Dropped returns how many per-subscriber deliveries were discarded.
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	subs := h.subscribers
	h.subscribers = make(map[*subscriber]struct{})
	h.closed = true
	h.mu.Unlock()
	for sub := range subs {
		sub.close()
	}
}

var _ memerun.EventSink = (*Hub)(nil)
