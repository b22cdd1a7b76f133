// Package http exposes the service's HTTP surface: health, readiness,
// metrics, and the synchronous scenario evaluation endpoint used by the
// interactive UI.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/climate-scenario-service/internal/domain"
	"github.com/couchcryptid/climate-scenario-service/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and evaluation HTTP endpoints.
type Server struct {
	httpServer *http.Server
	baseline   domain.Baseline
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /v1/evaluate, and /v1/defaults routes.
func NewServer(addr string, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		baseline: domain.DefaultBaseline,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/evaluate", s.handleEvaluate)
	mux.HandleFunc("GET /v1/defaults", s.handleDefaults)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// handleEvaluate runs the model synchronously for one scenario. The UI calls
// this on every slider move, so the handler does nothing beyond decode,
// evaluate, and encode.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var in domain.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.metrics.EvaluateRequests.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed scenario: " + err.Error()})
		return
	}

	ev, err := domain.Evaluate(in, s.baseline)
	if err != nil {
		if errors.Is(err, domain.ErrNonPositiveConcentration) {
			s.metrics.EvaluateRequests.WithLabelValues("invalid_input").Inc()
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.metrics.EvaluateRequests.WithLabelValues("error").Inc()
		s.logger.Error("evaluation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "evaluation failed"})
		return
	}

	s.metrics.EvaluateRequests.WithLabelValues("ok").Inc()
	s.metrics.AirQualityLevels.WithLabelValues(ev.AirQuality.Label).Inc()
	writeJSON(w, http.StatusOK, ev)
}

// handleDefaults serves the reset-to-defaults scenario so UI clients don't
// hardcode it.
func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.DefaultScenario())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
