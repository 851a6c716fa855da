// Package server exposes the week resolver and the calendar pipeline over
// HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/weeks/{year}
//	GET /api/v1/weeks/{year}/{week}
//	GET /api/v1/calendar?kind=&from=&to=&mode=&format=
//
// Errors are returned as JSON objects carrying the error code and message,
// with the HTTP status derived from the code.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/gridcal/pkg/buildinfo"
	"github.com/matzehuels/gridcal/pkg/cache"
	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/observability"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

// requestTimeout bounds a single request, including PDF conversion.
const requestTimeout = 30 * time.Second

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server that renders through runner. The runner's cache
// also stores week tables.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/weeks/{year}", s.handleWeeks)
		r.Get("/weeks/{year}/{week}", s.handleWeek)
		r.Get("/calendar", s.handleCalendar)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}

// =============================================================================
// Middleware
// =============================================================================

const requestIDHeader = "X-Request-ID"

// requestID propagates the caller's X-Request-ID or assigns a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests logs every request and reports it to the server hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.Server()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		hooks.OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorResponse struct {
	Error   errors.Code `json:"error"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: code, Message: errors.UserMessage(err)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidWeek,
		errors.ErrCodeInvalidYear,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidMode,
		errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeDegenerateGeometry,
		errors.ErrCodeLabelCountMismatch:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// cacheGet and cacheSet wrap the runner's cache, logging failures instead
// of failing the request.
func (s *Server) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	data, hit, err := s.runner.Cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, "weeks")
	} else {
		observability.Cache().OnCacheMiss(ctx, "weeks")
	}
	return data, hit
}

func (s *Server) cacheSet(ctx context.Context, key string, data []byte) {
	if err := s.runner.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
		s.logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "weeks", len(data))
}
