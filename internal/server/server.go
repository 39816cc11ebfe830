// Package server exposes a calculator session over HTTP: one button press per
// request, serialised by a mutex.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Rorical/CalcPad/internal/buttons"
	"github.com/Rorical/CalcPad/internal/calculator"
	"github.com/Rorical/CalcPad/internal/metrics"
)

// Session is a single calculator shared by all requests
type Session struct {
	mu      sync.Mutex
	calc    *calculator.Calculator
	metrics *metrics.Recorder
}

func NewSession(rec *metrics.Recorder) *Session {
	return &Session{
		calc:    calculator.New(nil),
		metrics: rec,
	}
}

// Press handles one button press to completion.
func (s *Session) Press(name string) (calculator.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.calc.Snapshot()
	b, err := buttons.Press(s.calc, name)
	if err != nil {
		return before, err
	}
	after := s.calc.Snapshot()
	s.metrics.Observe(b.ID, b.Action, before, after)
	return after, nil
}

func (s *Session) Snapshot() calculator.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.Snapshot()
}

type Server struct {
	session *Session
	logger  *slog.Logger
}

// NewHandler builds the router. Metrics are registered on reg and served
// from gatherer.
func NewHandler(reg prometheus.Registerer, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	s := &Server{
		session: NewSession(metrics.New(reg)),
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/display", s.Display)
	r.Get("/buttons", s.Buttons)
	r.Post("/press/{button}", s.Press)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return r
}

// Display handles GET /display.
func (s *Server) Display(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

// Buttons handles GET /buttons.
func (s *Server) Buttons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buttons.Layout())
}

// Press handles POST /press/{button}.
func (s *Server) Press(w http.ResponseWriter, r *http.Request) {
	// "/" and "+" arrive percent-encoded
	name, err := url.PathUnescape(chi.URLParam(r, "button"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid button name"})
		return
	}
	snap, err := s.session.Press(name)
	if errors.Is(err, buttons.ErrUnknownButton) {
		s.logger.Warn("Press: unknown button", "button", name)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("Press failed", "button", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.logger.Debug("button pressed", "button", name, "display", snap.Display)
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
