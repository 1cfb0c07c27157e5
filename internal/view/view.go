// Package view renders pages into the site layout with html/template.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
)

// Page template names.
const (
	Home  = "home"
	Docs  = "docs"
	Error = "_error"

	layoutFile = "_layout.html"
)

// Data is the template data of a page. "title" and "description" are read
// by the layout.
type Data map[string]any

// Site holds the values shared by every page.
type Site struct {
	Title       string
	Description string
}

// Renderer executes page templates. It is immutable and safe for concurrent use.
type Renderer struct {
	site  Site
	pages map[string]*template.Template
}

// New parses "_layout.html" plus one "<name>.html" file per page from fsys.
func New(fsys fs.FS, site Site) (*Renderer, error) {
	r := &Renderer{site: site, pages: make(map[string]*template.Template)}

	funcs := template.FuncMap{
		"siteTitle":       func() string { return site.Title },
		"pageTitle":       r.PageTitle,
		"pageDescription": r.Description,
	}

	for _, name := range []string{Home, Docs, Error} {
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutFile, name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// PageTitle joins the site title and title with " | ", skipping empty parts.
func (r *Renderer) PageTitle(title any) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{r.site.Title, toString(title)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// Description returns desc, or the site description when desc is empty.
func (r *Renderer) Description(desc any) string {
	if s := toString(desc); s != "" {
		return s
	}
	return r.site.Description
}

// Render writes page name with data and status. The page is executed into a
// buffer first so a template error can still become a 500.
func (r *Renderer) Render(w http.ResponseWriter, name string, data Data, status int) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown view %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute view %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case template.HTML:
		return string(s)
	default:
		return fmt.Sprint(s)
	}
}
