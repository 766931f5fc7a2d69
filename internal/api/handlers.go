package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/tweetverse/internal/daterange"
	"github.com/spacesedan/tweetverse/internal/models"
	"github.com/spacesedan/tweetverse/internal/records"
	"github.com/spacesedan/tweetverse/internal/sentiment"
	"github.com/spacesedan/tweetverse/internal/session"
	"github.com/spacesedan/tweetverse/internal/wordfreq"
)

type datasetResponse struct {
	DatasetID string           `json:"dataset_id"`
	FileName  string           `json:"file_name"`
	Total     int              `json:"total"`
	Showing   int              `json:"showing"`
	Bounds    models.DateRange `json:"bounds"`
	Range     models.DateRange `json:"range"`
	Stats     records.Stats    `json:"stats"`
}

func newDatasetResponse(v session.View) datasetResponse {
	return datasetResponse{
		DatasetID: v.Dataset.ID,
		FileName:  v.Dataset.FileName,
		Total:     v.Total(),
		Showing:   v.Showing(),
		Bounds:    v.Dataset.Bounds,
		Range:     v.Range,
		Stats:     v.Dataset.Stats,
	}
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("no route for %s", r.URL.Path))
		return
	}
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.landing)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)

	limit := s.settings.MaxUploadBytes()
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var tooBig *http.MaxBytesError
		if !errors.As(err, &tooBig) {
			err = fmt.Errorf("%w: %v", errNoFile, err)
		}
		s.fail(w, fmt.Errorf("parse multipart: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.fail(w, fmt.Errorf("%w: %v", errNoFile, err))
		return
	}
	defer file.Close()

	res, err := s.parser.ParseUpload(header.Filename, file)
	if err != nil {
		slog.Warn("[API] Upload rejected",
			slog.String("session", id),
			slog.String("file", header.Filename),
			slog.String("error", err.Error()))
		s.fail(w, err)
		return
	}

	ds := session.NewDataset(header.Filename, res, s.store.Now())
	view := s.store.Replace(id, ds)
	payload := newDatasetResponse(view)
	s.hub.Publish(id, Event{Type: EventDatasetReplaced, Data: payload})

	writeJSON(w, http.StatusOK, map[string]any{
		"dataset":         payload,
		"records":         res.Stats.Retained,
		"skipped":         res.Stats.Dropped,
		"untimed":         res.Stats.Untimed,
		"unparsed_scores": res.Stats.UnparsedScores,
		"bounds":          view.Dataset.Bounds,
		"range":           view.Range,
	})
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	view, ok := s.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newDatasetResponse(view))
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	id := s.sessionID(w, r)

	var req struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	req.Start, req.End = strings.TrimSpace(req.Start), strings.TrimSpace(req.End)
	if req.Start == "" && req.End == "" {
		s.fail(w, errNoBounds)
		return
	}

	current, err := s.store.View(id)
	if err != nil {
		s.fail(w, err)
		return
	}

	var start, end time.Time
	if req.Start != "" {
		if start, err = daterange.ParseBound(req.Start, false); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
	}
	if req.End != "" {
		if end, err = daterange.ParseBound(req.End, true); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
	}
	for _, t := range []time.Time{start, end} {
		if !t.IsZero() && current.Selection.Disabled(t) {
			s.fail(w, fmt.Errorf("%w: %s", errDisabledDate, t.Format(daterange.DayLayout)))
			return
		}
	}

	var (
		view    session.View
		changed bool
	)
	if !start.IsZero() {
		if view, changed, err = s.store.SelectStart(id, start); err != nil {
			s.fail(w, err)
			return
		}
	}
	if !end.IsZero() {
		var endChanged bool
		if view, endChanged, err = s.store.SelectEnd(id, end); err != nil {
			s.fail(w, err)
			return
		}
		changed = changed || endChanged
	}

	payload := newDatasetResponse(view)
	if changed {
		s.hub.Publish(id, Event{Type: EventRangeChanged, Data: payload})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"range":   view.Range,
		"showing": view.Showing(),
		"total":   view.Total(),
		"changed": changed,
	})
}

func (s *Server) handleWordCloud(w http.ResponseWriter, r *http.Request) {
	view, ok := s.view(w, r)
	if !ok {
		return
	}
	words, err := wordfreq.Tokenize(view.Records.Texts(), s.settings.WordCloudLimit)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": words})
}

func (s *Server) handleTimeSeries(w http.ResponseWriter, r *http.Request) {
	view, ok := s.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": sentiment.TimeSeries(view.Records)})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	view, ok := s.view(w, r)
	if !ok {
		return
	}
	stats := sentiment.Summarize(view.Records, s.settings.SummaryWordLimit)
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": stats,
		"shares":  sentiment.Shares(stats.SentimentCounts),
	})
}

func (s *Server) handleTweets(w http.ResponseWriter, r *http.Request) {
	view, ok := s.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"range":   view.Range,
		"summary": sentiment.Summarize(view.Records, s.settings.SummaryWordLimit),
		"topics":  wordfreq.Topics(view.Records.Texts(), s.settings.TopicLimit),
		"groups":  sentiment.GroupByLabel(view.Records),
	})
}

// view loads the filtered dataset for GET endpoints and writes the error
// response itself when that fails.
func (s *Server) view(w http.ResponseWriter, r *http.Request) (session.View, bool) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return session.View{}, false
	}
	v, err := s.store.View(s.sessionID(w, r))
	if err != nil {
		s.fail(w, err)
		return session.View{}, false
	}
	return v, true
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("[API] Request failed", slog.String("error", err.Error()))
	}
	writeErr(w, status, err)
}
