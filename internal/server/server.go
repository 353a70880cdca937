// Package server is a thin JSON façade over the naming pipeline, for
// callers that want proposals without shelling out to the CLI. It only
// proposes; applying renames stays an operator-confirmed CLI action.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/adeola-io/pdf-renamer/constants"
	"github.com/adeola-io/pdf-renamer/internal/scan"
)

type Service struct {
	scanner   *scan.Scanner
	inspector scan.Inspector
	logger    *slog.Logger
}

func NewService(scanner *scan.Scanner, inspector scan.Inspector, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{scanner: scanner, inspector: inspector, logger: logger}
}

// Router wires the HTTP surface.
func (s *Service) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/v1/propose", s.handlePropose)
	r.Post("/v1/scan", s.handleScan)
	r.Get("/v1/inspect", s.handleInspect)
	return r
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "pdf-renamer"})
}

type proposeRequest struct {
	Path string `json:"path"`
}

func (s *Service) handlePropose(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	if !constants.IsPDF(req.Path) {
		writeError(w, http.StatusBadRequest, "path must point to a .pdf file")
		return
	}

	candidates, _ := s.scanner.ScanFiles(r.Context(), []string{req.Path})
	if len(candidates) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "no proposal produced")
		return
	}
	writeJSON(w, http.StatusOK, candidates[0])
}

type scanRequest struct {
	Root       string `json:"root"`
	SkipHidden bool   `json:"skip_hidden"`
}

type scanResponse struct {
	Candidates []scan.Candidate `json:"candidates"`
	Stats      scan.Stats       `json:"stats"`
}

func (s *Service) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Root) == "" {
		writeError(w, http.StatusBadRequest, "root is required")
		return
	}

	candidates, stats, err := s.scanner.ScanDirectory(r.Context(), req.Root, req.SkipHidden)
	if err != nil {
		s.logger.Error("scan failed", "root", req.Root, "error", err)
		writeError(w, http.StatusInternalServerError, "scan failed")
		return
	}
	writeJSON(w, http.StatusOK, scanResponse{Candidates: candidates, Stats: stats})
}

func (s *Service) handleInspect(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if strings.TrimSpace(path) == "" {
		writeError(w, http.StatusBadRequest, "path query parameter is required")
		return
	}
	if s.inspector == nil {
		writeError(w, http.StatusNotImplemented, "inspection not available")
		return
	}
	info, err := s.inspector.Inspect(path)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Serve blocks until the context is canceled or the listener fails.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	logger.Info("http server listening", "addr", addr)
	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errc:
		return err
	}
}
