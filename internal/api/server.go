// SPDX-License-Identifier: MIT
// Package: plantsim/api
//
// server.go — routing and middleware.
//
// The handler chain is logging → CORS → mux. CORS answers preflight requests
// itself so the mux never sees OPTIONS for a POST-only route. Unknown paths
// and wrong methods are answered by the mux (404 and 405 with Allow).

package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Server serves the HTTP API.
type Server struct {
	cfg config
	mux *http.ServeMux
}

// NewServer builds a Server with its routes registered.
func NewServer(opts ...Option) *Server {
	s := &Server{cfg: newConfig(opts...), mux: http.NewServeMux()}

	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/plant", s.handlePlant)
	s.mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	s.mux.HandleFunc("POST /api/generate", s.handleGenerate)
	s.mux.HandleFunc("POST /api/validate", s.handleValidate)
	s.mux.HandleFunc("GET /api/params/{count}", s.handleParams)
	s.mux.HandleFunc("POST /api/variates", s.handleVariates)

	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.cors(s.mux))
}

// cors implements the allowed-origin policy. Credentials are allowed, so the
// request origin is echoed instead of "*".
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		origin := r.Header.Get("Origin")
		if origin != "" && (s.cfg.allowedOrigin == "*" || origin == s.cfg.allowedOrigin) {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
		}
		h.Add("Vary", "Origin")

		method := r.Header.Get("Access-Control-Request-Method")
		if r.Method != http.MethodOptions || method == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Preflight: allow whatever was asked for.
		h.Set("Access-Control-Allow-Methods", method)
		if hdrs := r.Header.Get("Access-Control-Request-Headers"); hdrs != "" {
			h.Set("Access-Control-Allow-Headers", hdrs)
		}
		h.Set("Access-Control-Max-Age", "600")
		w.WriteHeader(http.StatusNoContent)
	})
}

// statusRecorder remembers the status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests emits one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.cfg.logger.LogAttrs(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
