// Package server is the thin interactive surface over the core pipeline.
// It holds one normalized RecordSet resident for the process lifetime and
// re-runs filter → aggregate/tokenize/export on every request; it owns no
// logic beyond parameter parsing and serialization.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/metascope/metascope-cli/internal/config"
	"github.com/metascope/metascope-cli/internal/dataset"
)

// Server serves the exploration API for one resident dataset.
type Server struct {
	set    *dataset.RecordSet
	cfg    *config.Global
	logger *zap.Logger
}

// New creates a Server over an already-normalized record set.
func New(set *dataset.RecordSet, cfg *config.Global, logger *zap.Logger) *Server {
	return &Server{set: set, cfg: cfg, logger: logger}
}

// Router builds the chi router with request-ID and logging middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(s.logger))
	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/years", s.handleYears)
		r.Get("/journals", s.handleJournals)
		r.Get("/words", s.handleWords)
		r.Get("/export", s.handleExport)
	})
	return r
}
