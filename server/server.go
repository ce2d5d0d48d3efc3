// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/devtrivedi96/Code-analyst-ai/analyzers"
	"github.com/devtrivedi96/Code-analyst-ai/config"
)

const shutdownTimeout = 5 * time.Second

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Code  string `json:"code"`
	Model string `json:"model"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves analysis requests.
type Server struct {
	engine *analyzers.Engine
	cfg    config.ServerConfig
	log    *slog.Logger
}

// New creates a server backed by engine.
func New(engine *analyzers.Engine, cfg config.ServerConfig, log *slog.Logger) *Server {
	return &Server{engine: engine, cfg: cfg, log: log}
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.analyze)
	mux.HandleFunc("GET /api/rules", s.rules)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		s.fail(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		s.fail(w, http.StatusBadRequest, "No code provided")
		return
	}
	if req.Model == "" {
		req.Model = s.cfg.DefaultModel
	}

	report := s.engine.AnalyzeWithModel(req.Code, req.Model)
	s.log.Info("code analysis completed", "issues", len(report.Issues), "model", req.Model)

	s.write(w, http.StatusOK, report)
}

func (s *Server) rules(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK, s.engine.Catalog().Rules())
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.log.Warn("rejecting request", "status", status, "error", msg)
	s.write(w, status, ErrorResponse{Error: msg})
}

func (s *Server) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("writing response", "error", err)
	}
}
