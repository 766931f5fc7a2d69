package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/tweetverse/internal/daterange"
)

var ErrNoDataset = errors.New("session has no dataset")

type entry struct {
	dataset   *Dataset
	selection daterange.Selection
	lastSeen  time.Time
}

// Store keeps the current dataset and range selection of every browser
// session in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Now() time.Time {
	return s.now()
}

// Ensure returns id when it names a live session and otherwise creates a new
// session. created reports the latter.
func (s *Store) Ensure(id string) (sid string, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[id]; ok && id != "" {
		e.lastSeen = s.now()
		return id, false
	}

	sid = uuid.NewString()
	s.sessions[sid] = &entry{lastSeen: s.now()}
	slog.Debug("[SessionStore] Created session", slog.String("session", sid))
	return sid, true
}

// Replace installs ds as the session's dataset and resets the selection to
// the dataset bounds. The last call wins when uploads race.
func (s *Store) Replace(id string, ds *Dataset) View {
	sel := daterange.NewSelection(ds.Bounds, len(ds.Records) > 0)

	s.mu.Lock()
	e, ok := s.sessions[id]
	if !ok {
		e = &entry{}
		s.sessions[id] = e
	}
	e.dataset = ds
	e.selection = sel
	e.lastSeen = s.now()
	s.mu.Unlock()

	slog.Info("[SessionStore] Replaced dataset",
		slog.String("session", id),
		slog.String("dataset", ds.ID),
		slog.String("file", ds.FileName),
		slog.Int("records", len(ds.Records)))

	return newView(ds, sel)
}

// View returns the session's dataset filtered by its current range.
func (s *Store) View(id string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || e.dataset == nil {
		return View{}, ErrNoDataset
	}
	e.lastSeen = s.now()
	return newView(e.dataset, e.selection), nil
}

// SelectStart applies a new start date. changed is false when the selection
// still lacks an end.
func (s *Store) SelectStart(id string, t time.Time) (View, bool, error) {
	return s.update(id, func(sel daterange.Selection) (daterange.Selection, bool) {
		return sel.WithStart(t)
	})
}

// SelectEnd applies a new end date.
func (s *Store) SelectEnd(id string, t time.Time) (View, bool, error) {
	return s.update(id, func(sel daterange.Selection) (daterange.Selection, bool) {
		return sel.WithEnd(t)
	})
}

func (s *Store) update(id string, fn func(daterange.Selection) (daterange.Selection, bool)) (View, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || e.dataset == nil {
		return View{}, false, ErrNoDataset
	}

	sel, changed := fn(e.selection)
	e.selection = sel
	e.lastSeen = s.now()
	return newView(e.dataset, sel), changed, nil
}

// EvictIdle drops sessions not seen within the store's ttl and returns how
// many were removed.
func (s *Store) EvictIdle() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
