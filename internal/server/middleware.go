package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/msalah0e/archmap/internal/ctxlog"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests attaches a request-scoped logger to the context and logs each
// request once it completes.
func (s *Server) logRequests(next *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := s.logger.With("method", r.Method, "path", r.URL.Path)
		r = r.WithContext(ctxlog.WithLogger(r.Context(), logger))

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		_, route := next.Handler(r)
		if route == "" {
			route = "unmatched"
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
		logger.Debug("Request handled", "status", rec.code, "duration", time.Since(start))
	})
}
