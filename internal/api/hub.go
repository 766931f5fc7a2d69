package api

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EventConnected       = "connected"
	EventDatasetReplaced = "dataset_replaced"
	EventRangeChanged    = "range_changed"

	subscriberBuffer = 16
)

// Event is pushed to every websocket client of a session.
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
}

// Hub fans events out to the websocket clients of each session.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[string]chan Event)}
}

// Subscribe registers a client for sessionID. The channel is closed by
// Unsubscribe.
func (h *Hub) Subscribe(sessionID string) (string, <-chan Event) {
	clientID := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.subs[sessionID]
	if !ok {
		clients = make(map[string]chan Event)
		h.subs[sessionID] = clients
	}
	clients[clientID] = ch
	return clientID, ch
}

func (h *Hub) Unsubscribe(sessionID, clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.subs[sessionID]
	if ch, ok := clients[clientID]; ok {
		close(ch)
		delete(clients, clientID)
	}
	if len(clients) == 0 {
		delete(h.subs, sessionID)
	}
}

// Publish sends ev to the clients of sessionID. Clients whose buffer is full
// miss the event.
func (h *Hub) Publish(sessionID string, ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for clientID, ch := range h.subs[sessionID] {
		select {
		case ch <- ev:
		default:
			slog.Warn("[Hub] Dropped event for slow client",
				slog.String("session", sessionID),
				slog.String("client", clientID),
				slog.String("type", ev.Type))
		}
	}
}

func (h *Hub) Clients(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[sessionID])
}
