package api

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/stats"
	"github.com/dgallion1/docsite/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server of the documentation site.
type Server struct {
	router chi.Router
	docs   *docs.Resolver
	views  *view.Renderer
	assets fs.FS
	stats  *stats.Window
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(resolver *docs.Resolver, views *view.Renderer, assets fs.FS, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		docs:   resolver,
		views:  views,
		assets: assets,
		stats:  stats.NewWindow(cfg.StatsWindow),
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(s.recoverer)
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusMethodNotAllowed)
	})

	// Pages.
	r.Get("/", s.handleHome)
	r.Get("/docs", s.handleDocsIndex)
	r.Get("/docs/{id}", s.handleDocsPage)

	// Static files.
	r.Handle("/asset/*", http.StripPrefix("/asset/", http.FileServer(http.FS(s.assets))))

	r.Get("/health", s.handleHealth)
	r.Get("/api/stats/render", s.handleRenderStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRenderStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"window": s.cfg.StatsWindow.String(),
		"stats":  s.stats.Snapshot(),
	})
}
