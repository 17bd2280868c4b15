// Package server exposes diagram sessions over HTTP. Each session owns an
// interaction controller; the browser page is the rendering surface and
// reports clicks back as events.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/msalah0e/archmap/internal/ctxlog"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/idgen"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultMaxSessions bounds memory when clients never delete their sessions.
const DefaultMaxSessions = 1024

// Config configures a Server.
type Config struct {
	Options     interact.Options
	Logger      *slog.Logger
	MaxSessions int
}

// Server serves the live diagram page and the session API.
type Server struct {
	store       *diagram.Store
	opts        interact.Options
	logger      *slog.Logger
	registry    *prometheus.Registry
	metrics     *Metrics
	maxSessions int
	page        string

	mu       sync.Mutex
	sessions map[string]*session
	nextSeq  uint64
}

// session serializes events so each one runs to completion before the next.
type session struct {
	mu       sync.Mutex
	ctl      *interact.Controller
	lastSeen time.Time
	seq      uint64 // creation order, breaks lastSeen ties
}

// New creates a server for store.
func New(store *diagram.Store, cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = ctxlog.Discard()
	}
	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	page, err := render.HTML(render.LivePage("/api"))
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	return &Server{
		store:       store,
		opts:        cfg.Options,
		logger:      logger,
		registry:    reg,
		metrics:     NewMetrics(reg),
		maxSessions: maxSessions,
		page:        page,
		sessions:    make(map[string]*session),
	}, nil
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", "address", "http://"+addr+"/")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// createSession registers a fresh session, evicting the least recently used
// one when the cap is reached.
func (s *Server) createSession() (string, *session, error) {
	id, err := idgen.Session()
	if err != nil {
		return "", nil, err
	}
	sess := &session{
		ctl:      interact.NewController(s.store, s.opts),
		lastSeen: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.nextSeq++
	sess.seq = s.nextSeq
	s.sessions[id] = sess
	s.metrics.sessions.Set(float64(len(s.sessions)))
	return id, sess, nil
}

func (s *Server) evictOldestLocked() {
	var oldestID string
	var oldest time.Time
	var oldestSeq uint64
	for id, sess := range s.sessions {
		sess.mu.Lock()
		seen := sess.lastSeen
		sess.mu.Unlock()
		if oldestID == "" || seen.Before(oldest) || (seen.Equal(oldest) && sess.seq < oldestSeq) {
			oldestID, oldest, oldestSeq = id, seen, sess.seq
		}
	}
	if oldestID != "" {
		delete(s.sessions, oldestID)
		s.metrics.sessions.Set(float64(len(s.sessions)))
		s.metrics.evicted.Inc()
		s.logger.Debug("Evicted session", "session", oldestID)
	}
}

func (s *Server) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func (s *Server) deleteSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	s.metrics.sessions.Set(float64(len(s.sessions)))
	return true
}

// SessionCount returns the number of live sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
