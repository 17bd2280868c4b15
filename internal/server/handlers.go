package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/msalah0e/archmap/internal/ctxlog"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// diagramResponse is the body of GET /api/diagram.
type diagramResponse struct {
	Categories []diagram.Category `json:"categories"`
	Nodes      []diagram.Node     `json:"nodes"`
	Edges      []diagram.Edge     `json:"edges"`
}

// sessionResponse is returned by every session endpoint.
type sessionResponse struct {
	ID           string                `json:"id"`
	Event        string                `json:"event,omitempty"`
	Presentation interact.Presentation `json:"presentation"`
}

type eventRequest struct {
	Event string `json:"event"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the server's routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /api/diagram", s.handleDiagram)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/events", s.handleEvent)
	return s.logRequests(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.page))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, diagramResponse{
		Categories: s.store.Categories(),
		Nodes:      s.store.Nodes(),
		Edges:      s.store.Edges(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, sess, err := s.createSession()
	if err != nil {
		ctxlog.FromContext(r.Context()).Error("Failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create session")
		return
	}
	ctxlog.FromContext(r.Context()).Info("Session created", "session", id)

	sess.mu.Lock()
	p := sess.ctl.Presentation()
	sess.mu.Unlock()
	writeJSON(w, http.StatusCreated, sessionResponse{ID: id, Presentation: p})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	sess.mu.Lock()
	sess.lastSeen = time.Now()
	p := sess.ctl.Presentation()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Presentation: p})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.deleteSession(id) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())
	id := r.PathValue("id")
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req eventRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		s.metrics.rejected.WithLabelValues("body").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ev, err := interact.ParseEvent(req.Event)
	if err != nil {
		s.metrics.rejected.WithLabelValues("parse").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := interact.Validate(s.store, ev); err != nil {
		reason := "invalid"
		if errors.Is(err, interact.ErrUnknownNode) {
			reason = "unknown_node"
		}
		s.metrics.rejected.WithLabelValues(reason).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	sess.ctl.Apply(ev)
	sess.lastSeen = time.Now()
	p := sess.ctl.Presentation()
	sess.mu.Unlock()

	s.metrics.events.WithLabelValues(interact.Kind(ev)).Inc()
	logger.Debug("Event applied", "session", id, "event", ev.String())
	writeJSON(w, http.StatusOK, sessionResponse{ID: id, Event: ev.String(), Presentation: p})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
