// Package server provides the HTTP API for Clausewise.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/analysis"
	"github.com/hyperjump/clausewise/internal/config"
	"github.com/hyperjump/clausewise/internal/summarize"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// WatchService manages watched directories at runtime.
type WatchService interface {
	Directories() []string
	AddDirectory(path string, syncExisting bool) error
	RemoveDirectory(path string) error
}

// Server is the HTTP server for the Clausewise API.
type Server struct {
	processor  *analysis.Processor
	summaries  *summarize.Service
	config     *config.Config
	configPath string
	configMu   sync.Mutex
	watch      WatchService
	logger     *zap.Logger
	server     *http.Server
}

// NewServer creates a server. watch may be nil when directory watching is
// off; configPath, when set, is rewritten as watched directories change.
func NewServer(
	processor *analysis.Processor,
	summaries *summarize.Service,
	cfg *config.Config,
	logger *zap.Logger,
	watch WatchService,
	configPath string,
) *Server {
	if cfg == nil {
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
	}
	return &Server{
		processor:  processor,
		summaries:  summaries,
		config:     cfg,
		configPath: configPath,
		watch:      watch,
		logger:     utils.OrNop(logger),
	}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/patterns", s.handlePatterns)

		r.Post("/analyze", s.handleAnalyze)
		r.Post("/documents", s.handleDocument)
		r.Post("/entities", s.handleEntities)
		r.Post("/dates", s.handleDates)
		r.Post("/parties", s.handleParties)
		r.Post("/citations", s.handleCitations)
		r.Post("/sections", s.handleSections)
		r.Post("/insights", s.handleInsights)
		r.Post("/summarize", s.handleSummarize)

		r.Get("/watch/directories", s.handleWatchDirectoriesList)
		r.Post("/watch/directories", s.handleWatchDirectoriesAdd)
		r.Delete("/watch/directories", s.handleWatchDirectoriesRemove)
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
