package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// handleWebSocket streams session events until the client goes away.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	var current string
	if c, err := r.Cookie(SessionCookie); err == nil {
		current = c.Value
	}
	id, created := s.store.Ensure(current)

	header := http.Header{}
	if created {
		header.Add("Set-Cookie", s.sessionCookie(id).String())
	}
	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		slog.Warn("[Hub] Upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	clientID, events := s.hub.Subscribe(id)
	defer s.hub.Unsubscribe(id, clientID)
	slog.Debug("[Hub] Client connected", slog.String("session", id), slog.String("client", clientID))

	done := make(chan struct{})
	go readUntilClosed(conn, done)

	hello := Event{Type: EventConnected, Timestamp: time.Now()}
	if view, err := s.store.View(id); err == nil {
		hello.Data = newDatasetResponse(view)
	}
	if err := writeEvent(conn, hello); err != nil {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(conn, ev); err != nil {
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

func writeEvent(conn *websocket.Conn, ev Event) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(ev)
}

// readUntilClosed discards client messages and closes done once the
// connection fails.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("[Hub] Client closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}
	}
}
