package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/yuin/goldmark"

	"notecal/internal/config"
	"notecal/internal/ics"
	appLog "notecal/internal/log"
	"notecal/internal/model"
	"notecal/internal/note"
	"notecal/internal/vault"
)

// scanCacheTTL bounds how stale an HTTP response may be between forced
// refreshes (cron / watcher).
const scanCacheTTL = 30 * time.Second

// Server exposes extracted events over HTTP: a JSON API, an iCalendar
// feed, and a markdown preview for jump-to-source.
type Server struct {
	cfg   *config.Config
	vault *vault.Vault
	mux   *http.ServeMux

	// Cached scan result shared by all endpoints. Refreshed on TTL
	// expiry and by Refresh (cron schedule, vault watcher).
	mu    sync.RWMutex
	cache *scanCache
}

type scanCache struct {
	result    vault.ScanResult
	updatedAt time.Time
}

// NewServer constructs a Server over cfg and v.
func NewServer(cfg *config.Config, v *vault.Vault) *Server {
	s := &Server{
		cfg:   cfg,
		vault: v,
		mux:   http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/events", s.handleEvents)
	s.mux.HandleFunc("/api/preview", s.handlePreview)
	s.mux.HandleFunc("/calendar.ics", s.handleCalendar)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// Refresh rescans the vault immediately and replaces the cache. Wired to
// the cron schedule and the filesystem watcher in serve mode.
func (s *Server) Refresh() {
	result := s.vault.ScanAll()
	s.mu.Lock()
	s.cache = &scanCache{result: result, updatedAt: time.Now()}
	s.mu.Unlock()
}

// scan returns the cached scan result, refreshing it when stale.
func (s *Server) scan() vault.ScanResult {
	now := time.Now()

	s.mu.RLock()
	c := s.cache
	s.mu.RUnlock()
	if c != nil && now.Sub(c.updatedAt) < scanCacheTTL {
		return c.result
	}

	result := s.vault.ScanAll()
	s.mu.Lock()
	s.cache = &scanCache{result: result, updatedAt: time.Now()}
	s.mu.Unlock()
	return result
}

// eventDTO is the JSON-friendly view of an event.
type eventDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	AllDay    bool      `json:"all_day"`
	Type      string    `json:"type"`
	Path      string    `json:"path"`
	BlockLink string    `json:"block_link,omitempty"`
}

type eventsResponse struct {
	Events      []eventDTO `json:"events"`
	FailedNotes []string   `json:"failed_notes,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// handleEvents returns extracted events, optionally filtered.
//
// GET /api/events?type=default&match=milk&folder=work/&folder=home/
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := s.baseQuery()
	if t := q.Get("type"); t != "" {
		query.Type = model.EventType(t)
	}
	if m := q.Get("match"); m != "" {
		query.ContentPattern = m
	}
	if folders := q["folder"]; len(folders) > 0 {
		query.Folders = folders
	}

	result := s.scan()

	dtos := make([]eventDTO, 0, len(result.Events))
	for _, ev := range result.Events {
		if !note.MatchesFilter(ev, query) {
			continue
		}
		dtos = append(dtos, eventDTO{
			ID:        ev.ID,
			Title:     ev.Title,
			Start:     ev.Start,
			End:       ev.End,
			AllDay:    ev.AllDay,
			Type:      string(ev.Type),
			Path:      ev.Path,
			BlockLink: ev.BlockLink,
		})
	}

	resp := eventsResponse{
		Events:      dtos,
		GeneratedAt: time.Now(),
	}
	for _, f := range result.Failures {
		resp.FailedNotes = append(resp.FailedNotes, f.Path)
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleCalendar serves the extracted events as an iCalendar feed.
func (s *Server) handleCalendar(w http.ResponseWriter, _ *http.Request) {
	query := s.baseQuery()
	result := s.scan()

	events := make([]model.Event, 0, len(result.Events))
	for _, ev := range result.Events {
		if note.MatchesFilter(ev, query) {
			events = append(events, ev)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(ics.Export(events, "notecal"))); err != nil {
		appLog.Error("failed to write calendar response", err)
	}
}

// handlePreview renders one note's markdown to HTML.
//
// GET /api/preview?path=notes/todo.md
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	rel := r.URL.Query().Get("path")
	if rel == "" {
		writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}

	text, err := s.vault.ReadNote(rel)
	if err != nil {
		appLog.Error("preview read failed", err, "path", rel)
		writeError(w, http.StatusNotFound, "note not found")
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		appLog.Error("preview render failed", err, "path", rel)
		writeError(w, http.StatusInternalServerError, "failed to render note")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) baseQuery() note.Query {
	return note.Query{
		Type:           model.EventType(s.cfg.EventType),
		ContentPattern: s.cfg.ContentFilter,
		Folders:        s.cfg.Folders,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("failed to write JSON response", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	type errResp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, errResp{Error: msg})
}
