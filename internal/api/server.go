package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/spacesedan/tweetverse/config"
	"github.com/spacesedan/tweetverse/internal/records"
	"github.com/spacesedan/tweetverse/internal/session"
)

const SessionCookie = "tweetverse_session"

type Server struct {
	settings config.Settings
	store    *session.Store
	hub      *Hub
	parser   *records.Parser
	upgrader websocket.Upgrader
	landing  []byte
}

func NewServer(settings config.Settings, store *session.Store, hub *Hub) *Server {
	s := &Server{
		settings: settings,
		store:    store,
		hub:      hub,
		parser:   records.NewParser(),
		landing:  renderLanding(),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleLanding)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/api/dataset", s.handleDataset)
	mux.HandleFunc("/api/range", s.handleRange)
	mux.HandleFunc("/api/wordcloud", s.handleWordCloud)
	mux.HandleFunc("/api/timeseries", s.handleTimeSeries)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/tweets", s.handleTweets)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return chain(mux, logRequests, withCORS(s.settings.AllowedOrigin))
}

// sessionID returns the caller's session, creating one and setting the
// cookie when the request carries none or an expired one.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	var current string
	if c, err := r.Cookie(SessionCookie); err == nil {
		current = c.Value
	}

	id, created := s.store.Ensure(current)
	if created {
		http.SetCookie(w, s.sessionCookie(id))
	}
	return id
}

func (s *Server) sessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.settings.SessionTTL() / time.Second),
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return s.settings.AllowedOrigin == "*" || origin == "" || origin == s.settings.AllowedOrigin
}
