// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs sizing or cost logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fargate-cost/core/engine"
	"fargate-cost/core/output"
	"fargate-cost/internal/errors"
	"fargate-cost/internal/logging"
	"fargate-cost/metrics"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server around an engine
func NewServer(version string, eng *engine.Engine) *Server {
	s := &Server{
		engine:  eng,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /tiers", s.handleTiers)
	s.mux.HandleFunc("GET /pricing", s.handlePricing)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.EstimateRequests.WithLabelValues("invalid").Inc()
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := validateEstimateRequest(&req); err != nil {
		metrics.EstimateRequests.WithLabelValues("invalid").Inc()
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	resp := EstimateResponse{Results: make([]*output.Report, 0, len(req.Workloads))}
	for _, spec := range req.Workloads {
		report, err := s.engine.Estimate(spec.workload())
		if err != nil {
			code, status := statusForError(err)
			metrics.EstimateRequests.WithLabelValues("error").Inc()
			s.writeError(w, code, err.Error(), status)
			return
		}
		resp.Results = append(resp.Results, report)
	}

	resp.Metadata = &ResponseMetadata{
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}

	metrics.EstimateRequests.WithLabelValues("ok").Inc()
	s.writeJSON(w, resp, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	model := s.engine.Pricing()
	tiers := s.engine.Catalog().Tiers()

	resp := TiersResponse{
		Tiers:    make([]TierInfo, 0, len(tiers)),
		Currency: model.Currency.String(),
	}
	for _, tier := range tiers {
		resp.Tiers = append(resp.Tiers, TierInfo{
			Label:      tier.Label,
			CPU:        tier.CPU,
			Memory:     tier.Memory,
			CostPerDay: model.CostPerDay(tier).String(),
		})
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handlePricing handles GET /pricing
func (s *Server) handlePricing(w http.ResponseWriter, r *http.Request) {
	model := s.engine.Pricing()
	s.writeJSON(w, PricingResponse{
		PerVCPUHour: model.PerVCPUHour.String(),
		PerGBHour:   model.PerGBHour.String(),
		Currency:    model.Currency.String(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error envelope
func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}, status)
}

// statusForError maps domain error kinds to HTTP status codes
func statusForError(err error) (string, int) {
	switch {
	case errors.IsType(err, errors.TypeResourceExceeded):
		return string(errors.TypeResourceExceeded), http.StatusUnprocessableEntity
	case errors.IsType(err, errors.TypeInput):
		return string(errors.TypeInput), http.StatusBadRequest
	default:
		return string(errors.TypeInternal), http.StatusInternalServerError
	}
}
