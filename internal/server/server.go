// Package server exposes the calculator registry as a JSON HTTP API. The
// engine stays pure; handlers only translate between HTTP and Params maps.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mortcalc/mortcalc/internal/calculators"
	"github.com/mortcalc/mortcalc/internal/config"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/logging"
	"github.com/mortcalc/mortcalc/internal/store"
)

// Server routes calculator requests. The scenario store is optional; with a
// nil store the save endpoints report 404 and calc results are not recorded.
type Server struct {
	registry *calculators.Registry
	store    store.ScenarioStore
	logger   logging.Logger
	cfg      config.ServerConfig
	limiter  *RateLimiter
}

func NewServer(registry *calculators.Registry, st store.ScenarioStore, logger logging.Logger, cfg config.ServerConfig) *Server {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Server{
		registry: registry,
		store:    st,
		logger:   logger,
		cfg:      cfg,
		limiter:  NewRateLimiter(cfg.RateLimitPerMin, time.Minute),
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/calculators", s.handleList)
	mux.HandleFunc("GET /api/calculators/{slug}", s.handleCalculatorGet)
	mux.HandleFunc("POST /api/calculators/{slug}", s.handleCalculatorPost)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleSessionList)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleSessionClear)
	return RateLimitMiddleware(s.limiter, mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Infof("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.limiter.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.All())
}

// handleCalculatorGet returns the calculator's descriptor. Query parameters
// act as a prefill: when present they are run through the calculator and the
// result rides along, so a shareable URL like
// /api/calculators/mortgage-cost?loanAmount=360000&interestRate=6.75&termYears=30
// answers in one round trip.
func (s *Server) handleCalculatorGet(w http.ResponseWriter, r *http.Request) {
	desc, ok := s.registry.Lookup(r.PathValue("slug"))
	if !ok {
		http.Error(w, "unknown calculator", http.StatusNotFound)
		return
	}

	resp := calculatorResponse{Calculator: desc}
	query := r.URL.Query()
	if len(query) > 0 {
		params := make(calculators.Params, len(query))
		for key, values := range query {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
		resp.Params = params
		resp.Result = desc.Run(params)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCalculatorPost(w http.ResponseWriter, r *http.Request) {
	desc, ok := s.registry.Lookup(r.PathValue("slug"))
	if !ok {
		http.Error(w, "unknown calculator", http.StatusNotFound)
		return
	}

	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	params := calculators.Params(req.Params)
	if missing := desc.MissingRequired(params); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "missing required parameters",
			"missing": missing,
		})
		return
	}

	result := desc.Run(params)
	if req.SessionID != "" && s.store != nil && result != nil {
		saved := store.SavedScenario{
			Calculator: desc.Slug,
			Params:     req.Params,
			Result:     result,
			SavedAt:    time.Now().UTC(),
		}
		if err := s.store.Save(r.Context(), req.SessionID, saved); err != nil {
			s.logger.Warnf("failed to save scenario for session %s: %v", req.SessionID, err)
		}
	}

	writeJSON(w, http.StatusOK, calcResponse{Calculator: desc.Slug, Result: result})
}

func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "scenario store disabled", http.StatusNotFound)
		return
	}
	scenarios, err := s.store.List(r.Context(), r.PathValue("id"))
	if err != nil {
		if err == store.ErrNotFound {
			http.Error(w, "no saved scenarios", http.StatusNotFound)
			return
		}
		s.logger.Errorf("session list failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func (s *Server) handleSessionClear(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "scenario store disabled", http.StatusNotFound)
		return
	}
	if err := s.store.Clear(r.Context(), r.PathValue("id")); err != nil {
		s.logger.Errorf("session clear failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type calcRequest struct {
	Params    map[string]string `json:"params"`
	SessionID string            `json:"sessionId,omitempty"`
}

type calcResponse struct {
	Calculator string         `json:"calculator"`
	Result     *domain.Result `json:"result"`
}

type calculatorResponse struct {
	Calculator *calculators.Descriptor `json:"calculator"`
	Params     calculators.Params      `json:"params,omitempty"`
	Result     *domain.Result          `json:"result,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
