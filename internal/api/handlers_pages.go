package api

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/dgallion1/docsite/internal/decorate"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/view"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, view.Home, view.Data{}, http.StatusOK)
}

// handleDocsIndex serves the "_index" document under the base title.
func (s *Server) handleDocsIndex(w http.ResponseWriter, r *http.Request) {
	s.serveDoc(w, r, docs.IndexSlug, true)
}

func (s *Server) handleDocsPage(w http.ResponseWriter, r *http.Request) {
	s.serveDoc(w, r, chi.URLParam(r, "id"), false)
}

func (s *Server) serveDoc(w http.ResponseWriter, r *http.Request, id string, index bool) {
	start := time.Now()
	rec, err := s.docs.Resolve(id, index)
	switch {
	case errors.Is(err, docs.ErrNotFound):
		s.fail(w, r, http.StatusNotFound)
		return
	case err != nil:
		s.log.Error("resolve doc", "id", id, "error", err)
		s.fail(w, r, http.StatusInternalServerError)
		return
	}

	content, err := decorate.Decorate(rec.ContentHTML, r.Host)
	if err != nil {
		s.log.Warn("decorate doc", "slug", rec.Slug, "error", err)
		content = rec.ContentHTML
	}
	s.stats.Observe(start)

	s.render(w, r, view.Docs, view.Data{
		"title":       rec.Title,
		"description": rec.Description,
		"content":     template.HTML(content),
		"outline":     rec.Outline,
	}, http.StatusOK)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data view.Data, status int) {
	if err := s.views.Render(w, name, data, status); err != nil {
		s.log.Error("render view", "view", name, "path", r.URL.Path, "error", err)
		http.Error(w, defaultErrorMessage, http.StatusInternalServerError)
	}
}
