// Package http serves the operations API: health, version, metrics, the
// tool catalog, direct tool execution, and the call journal.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/bookhub/bookhub/internal/auth"
	"github.com/bookhub/bookhub/internal/core"
	"github.com/bookhub/bookhub/internal/journal"
	"github.com/bookhub/bookhub/internal/telemetry"
	"github.com/bookhub/bookhub/internal/tools"
)

const maxRequestBodyBytes = 1 << 20

// BuildInfo identifies the running binary on /version. Values are injected
// at link time and default to empty strings in dev builds.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// CallJournal is the read side of the tool call journal.
type CallJournal interface {
	List(ctx context.Context, f journal.Filter) ([]tools.CallRecord, error)
}

type Server struct {
	exec     *tools.Executor
	calls    CallJournal
	verifier *auth.Verifier
	build    BuildInfo
	srv      *http.Server
	logger   *slog.Logger
}

// NewServer wires the operations routes. A nil verifier leaves the API
// open, for deployments that terminate auth upstream. A nil calls journal
// makes the journal endpoint answer 503.
func NewServer(addr string, exec *tools.Executor, calls CallJournal, verifier *auth.Verifier, logger *slog.Logger, build BuildInfo) *Server {
	s := &Server{
		exec:     exec,
		calls:    calls,
		verifier: verifier,
		build:    build,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /version", s.handleVersion)
	mux.HandleFunc("GET /metrics", s.handleMetrics)
	mux.HandleFunc("GET /api/v1/tools", s.requireAuth(s.handleListTools))
	mux.HandleFunc("POST /api/v1/tools/{name}", s.requireAuth(s.handleCallTool))
	mux.HandleFunc("GET /api/v1/calls", s.requireAuth(s.handleListCalls))

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      withLogging(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.logger.Info("http server starting", "addr", s.srv.Addr)
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.srv.Serve(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// requireAuth guards the /api/v1 routes with the HS256 bearer scheme when a
// verifier is configured.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.verifier == nil {
			next(w, r)
			return
		}
		token, ok := auth.BearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		subject, err := s.verifier.Verify(token)
		if err != nil {
			s.logger.Warn("bearer token rejected", "error", err, "path", r.URL.Path)
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeErr(w, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		s.logger.Debug("request authenticated", "subject", subject, "path", r.URL.Path)
		next(w, r)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.build)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, telemetry.RenderPrometheus())
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	reg := s.exec.Registry()
	defs := make([]map[string]any, 0, reg.Len())
	for _, t := range reg.All() {
		defs = append(defs, t.Definition())
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": defs})
}

func (s *Server) handleCallTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	args, err := decodeArgs(w, r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	env := s.exec.Execute(r.Context(), name, args)
	writeJSON(w, statusForEnvelope(env), env)
}

// statusForEnvelope maps a failed envelope onto an HTTP status. Codes raised
// before the gateway is reached get specific statuses; past that point the
// remote API's codes are open ended, so the mapping keys off the error kind.
func statusForEnvelope(env core.ToolEnvelope) int {
	if env.OK || env.Error == nil {
		return http.StatusOK
	}
	switch env.Error.Code {
	case "UNKNOWN_TOOL":
		return http.StatusNotFound
	case "TOOL_NOT_ALLOWED":
		return http.StatusForbidden
	}
	switch env.Error.Kind {
	case "validation":
		return http.StatusBadRequest
	case "authentication", "api":
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) handleListCalls(w http.ResponseWriter, r *http.Request) {
	if s.calls == nil {
		writeErr(w, http.StatusServiceUnavailable, "call journal is not configured")
		return
	}

	filter, err := parseCallListFilters(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := s.calls.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("journal list failed", "error", err)
		writeErr(w, http.StatusInternalServerError, "journal query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"calls": records,
		"count": len(records),
	})
}

// parseCallListFilters validates the journal query parameters: status,
// tool, created_after, created_before (RFC3339), and limit.
func parseCallListFilters(r *http.Request) (journal.Filter, error) {
	q := r.URL.Query()
	var f journal.Filter

	if status := q.Get("status"); status != "" {
		if status != "ok" && status != "error" {
			return journal.Filter{}, fmt.Errorf("status must be ok or error")
		}
		f.Status = status
	}
	f.Tool = q.Get("tool")

	if v := q.Get("created_after"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return journal.Filter{}, fmt.Errorf("created_after must be an RFC3339 timestamp")
		}
		f.CreatedAfter = &ts
	}
	if v := q.Get("created_before"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return journal.Filter{}, fmt.Errorf("created_before must be an RFC3339 timestamp")
		}
		f.CreatedBefore = &ts
	}
	if f.CreatedAfter != nil && f.CreatedBefore != nil && f.CreatedAfter.After(*f.CreatedBefore) {
		return journal.Filter{}, fmt.Errorf("created_after must not be after created_before")
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return journal.Filter{}, fmt.Errorf("limit must be a positive integer")
		}
		f.Limit = n
	}

	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeArgs reads the request body as a single JSON object of tool
// arguments. An empty body means no arguments.
func decodeArgs(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	args := map[string]any{}
	if err := dec.Decode(&args); err != nil {
		if err == io.EOF {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("request body must contain a single JSON object")
	}
	return args, nil
}

func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(sw, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
