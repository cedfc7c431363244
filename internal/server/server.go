// Package server implements the flamefold HTTP API.
//
// The server exposes a small JSON API over the rendering pipeline:
//
//	POST /render   - render folded-stacks text to svg, png, or json
//	GET  /healthz  - liveness probe
//	GET  /metrics  - Prometheus metrics
//
// Every request gets its own tree and layout; no profile state is shared
// between requests, so handlers are safe to run concurrently.
package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/matzehuels/flamefold/pkg/errors"
	"github.com/matzehuels/flamefold/pkg/folded"
	"github.com/matzehuels/flamefold/pkg/pipeline"
)

// =============================================================================
// Server
// =============================================================================

// maxRequestBytes bounds the accepted request body size (64 MiB of folded
// text is far beyond any realistic profile).
const maxRequestBytes = 64 << 20

// Server serves the rendering API.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	metrics *metrics
}

// New creates a server around a pipeline runner. A nil logger falls back to
// the package default.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger, metrics: newMetrics()}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	r.Post("/render", s.handleRender)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// =============================================================================
// Handlers
// =============================================================================

// renderRequest is the body of POST /render.
type renderRequest struct {
	// Input is the folded-stacks text to render.
	Input string `json:"input"`

	// Options configures the pipeline. Omitted fields use defaults.
	Options pipeline.Options `json:"options"`
}

// renderResponse is the body of a successful POST /render.
type renderResponse struct {
	Total     float64            `json:"total"`
	NodeCount int                `json:"node_count"`
	Depth     int                `json:"depth"`
	Artifacts map[string]string  `json:"artifacts"`
	Cache     pipeline.CacheInfo `json:"cache"`
}

// errorResponse is the body of any failed request.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := requestIDFrom(r.Context())
	logger := s.logger.With("request_id", reqID)

	var req renderRequest
	body := io.LimitReader(r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.writeError(w, reqID, http.StatusBadRequest,
			apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Input == "" {
		s.writeError(w, reqID, http.StatusBadRequest,
			apperrors.New(apperrors.ErrCodeInvalidInput, "input is required"))
		return
	}
	req.Options.Logger = logger

	result, err := s.runner.Execute(r.Context(), []byte(req.Input), req.Options)
	if err != nil {
		s.metrics.renderErrors.Inc()
		s.writeError(w, reqID, statusFor(err), err)
		return
	}

	s.metrics.observeCache(result.CacheInfo)
	s.metrics.renderDuration.Observe(time.Since(start).Seconds())

	artifacts := make(map[string]string, len(result.Artifacts))
	for format, data := range result.Artifacts {
		s.metrics.renders.WithLabelValues(format).Inc()
		artifacts[format] = encodeArtifact(format, data)
	}

	logger.Info("render complete",
		"nodes", result.Stats.NodeCount,
		"formats", len(result.Artifacts),
		"duration", time.Since(start))

	s.writeJSON(w, http.StatusOK, renderResponse{
		Total:     result.Stats.Total,
		NodeCount: result.Stats.NodeCount,
		Depth:     result.Stats.Depth,
		Artifacts: artifacts,
		Cache:     result.CacheInfo,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// Helpers
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID assigns each request a unique ID, echoed in the response header
// and attached to log lines.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// statusFor maps pipeline errors to HTTP status codes. Malformed folded
// input and bad options are client errors; everything else is a 500.
func statusFor(err error) int {
	var lineErr *folded.LineError
	if errors.As(err, &lineErr) {
		return http.StatusBadRequest
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidPalette, apperrors.ErrCodeInvalidConfig,
		apperrors.ErrCodeParse:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// encodeArtifact prepares an artifact for the JSON response. Text formats
// pass through; binary formats are base64 encoded.
func encodeArtifact(format string, data []byte) string {
	if format == pipeline.FormatPNG {
		return base64.StdEncoding.EncodeToString(data)
	}
	return string(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, reqID string, status int, err error) {
	s.logger.Error("request failed", "request_id", reqID, "status", status, "error", err)
	s.writeJSON(w, status, errorResponse{
		Error:     apperrors.UserMessage(err),
		Code:      string(apperrors.GetCode(err)),
		RequestID: reqID,
	})
}
