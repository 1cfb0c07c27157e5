package view

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dgallion1/docsite/web"
)

var site = Site{Title: "Froq! Framework", Description: "Froq! Hassle-free PHP framework."}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(web.Templates(), site)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestPageTitle(t *testing.T) {
	r := newRenderer(t)
	tests := []struct {
		title any
		want  string
	}{
		{nil, "Froq! Framework"},
		{"", "Froq! Framework"},
		{"Docs", "Froq! Framework | Docs"},
		{"Docs | Controller", "Froq! Framework | Docs | Controller"},
	}
	for _, tt := range tests {
		if got := r.PageTitle(tt.title); got != tt.want {
			t.Errorf("PageTitle(%v) = %q, want %q", tt.title, got, tt.want)
		}
	}

	bare := &Renderer{}
	if got := bare.PageTitle("Docs"); got != "Docs" {
		t.Errorf("empty site title: got %q", got)
	}
}

func TestDescription(t *testing.T) {
	r := newRenderer(t)
	if got := r.Description(nil); got != site.Description {
		t.Errorf("expected site description, got %q", got)
	}
	if got := r.Description("Routing guide"); got != "Routing guide" {
		t.Errorf("expected page description, got %q", got)
	}
}

func TestRenderDocs(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, Docs, Data{
		"title":   "Docs | Controller",
		"content": template.HTML("<h1>Controller</h1>"),
	}, http.StatusOK)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>Froq! Framework | Docs | Controller</title>",
		`<div class="docs">`,
		"<h1>Controller</h1>",
		`content="Froq! Hassle-free PHP framework."`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
	if strings.Contains(body, `class="outline"`) {
		t.Error("expected no outline without headings")
	}
}

func TestRenderEscapesPlainStrings(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	if err := r.Render(rec, Docs, Data{"content": "<script>x</script>"}, http.StatusOK); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(rec.Body.String(), "<script>x</script>") {
		t.Error("expected plain string content to be escaped")
	}
}

func TestRenderError(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, Error, Data{"code": 404, "message": "Not Found"}, http.StatusNotFound)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h2>404</h2>") || !strings.Contains(body, "<p>Not Found</p>") {
		t.Errorf("unexpected error body: %s", body)
	}
}

func TestRenderUnknownView(t *testing.T) {
	r := newRenderer(t)
	rec := httptest.NewRecorder()
	if err := r.Render(rec, "missing", nil, http.StatusOK); err == nil {
		t.Fatal("expected error for unknown view")
	}
	if rec.Body.Len() != 0 {
		t.Error("expected nothing written")
	}
}

func TestNewMissingTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"_layout.html": {Data: []byte(`{{define "layout"}}{{template "content" .}}{{end}}`)},
		"home.html":    {Data: []byte(`{{define "content"}}home{{end}}`)},
	}
	if _, err := New(fsys, site); err == nil {
		t.Fatal("expected error when a page template is missing")
	}
}
