package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
)

// AggregationService is the slice of the aggregator the HTTP layer needs.
type AggregationService interface {
	Run(ctx context.Context) (domain.AggregationResult, error)
	Snapshot() (domain.AggregationResult, bool)
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, metrics, and the threat read API.
type Server struct {
	httpServer *http.Server
	service    AggregationService
	logger     *slog.Logger
}

// NewServer creates an HTTP server with ops routes and the /api/v1 read API.
func NewServer(addr string, service AggregationService, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: service,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/aggregate", s.handleAggregate)
	mux.HandleFunc("GET /api/v1/threats", s.handleThreats)
	mux.HandleFunc("GET /api/v1/risk-assessment", s.handleRiskAssessment)
	mux.HandleFunc("GET /api/v1/summary", s.handleSummary)
	mux.HandleFunc("GET /api/v1/hotspots", s.handleHotspots)

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

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.service.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleAggregate triggers a synchronous aggregation run and returns the
// fresh result.
func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	result, err := s.service.Run(r.Context())
	if err != nil {
		s.logger.Error("aggregation run failed", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleThreats serves the active threats from the latest run, optionally
// filtered by severity and region.
func (s *Server) handleThreats(w http.ResponseWriter, r *http.Request) {
	result, ok := s.service.Snapshot()
	if !ok {
		writeNoSnapshot(w)
		return
	}

	severity := r.URL.Query().Get("severity")
	region := r.URL.Query().Get("region")

	threats := make([]domain.ThreatCluster, 0, len(result.ActiveThreats))
	for _, threat := range result.ActiveThreats {
		if severity != "" && string(threat.Severity) != severity {
			continue
		}
		if region != "" && !mentionsRegion(threat, region) {
			continue
		}
		threats = append(threats, threat)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"threats":   threats,
		"count":     len(threats),
		"timestamp": result.Timestamp,
	})
}

func (s *Server) handleRiskAssessment(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.service.Snapshot()
	if !ok {
		writeNoSnapshot(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"risk_assessment": result.RiskAssessment,
		"timestamp":       result.Timestamp,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.service.Snapshot()
	if !ok {
		writeNoSnapshot(w)
		return
	}
	writeJSON(w, http.StatusOK, domain.Summarize(result))
}

func (s *Server) handleHotspots(w http.ResponseWriter, _ *http.Request) {
	result, ok := s.service.Snapshot()
	if !ok {
		writeNoSnapshot(w)
		return
	}
	hotspots := domain.Hotspots(result.ActiveThreats)
	writeJSON(w, http.StatusOK, map[string]any{
		"hotspots":  hotspots,
		"count":     len(hotspots),
		"timestamp": result.Timestamp,
	})
}

// mentionsRegion reports whether any affected location matches the region
// filter, ignoring case.
func mentionsRegion(threat domain.ThreatCluster, region string) bool {
	for _, loc := range threat.AffectedLocations {
		if strings.EqualFold(loc, region) {
			return true
		}
	}
	return false
}

func writeNoSnapshot(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error": "no aggregation run has completed yet",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
