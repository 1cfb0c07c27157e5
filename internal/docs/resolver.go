package docs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrNotFound is returned when no markdown file exists for a slug.
var ErrNotFound = errors.New("doc not found")

const (
	// DefaultBaseTitle prefixes every documentation page title.
	DefaultBaseTitle = "Docs"

	// IndexSlug names the document served at the bare docs route.
	IndexSlug = "_index"

	ext = ".md"
)

// headingRe matches a level-one heading and stops at "[" so trailing
// markdown link syntax stays out of the title.
var headingRe = regexp.MustCompile(`^#[ \t]+([^\[]+)`)

// Record is a resolved documentation page. It is built fresh on every call.
type Record struct {
	Slug        string
	Title       string
	Description string
	ContentHTML string
	Outline     []Heading
}

// Resolver looks up markdown documents by slug and renders them to HTML.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	fsys      fs.FS
	md        goldmark.Markdown
	baseTitle string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseTitle overrides DefaultBaseTitle.
func WithBaseTitle(title string) Option {
	return func(r *Resolver) {
		if title != "" {
			r.baseTitle = title
		}
	}
}

// NewResolver creates a resolver reading "<slug>.md" files from the root of fsys.
func NewResolver(fsys fs.FS, opts ...Option) *Resolver {
	r := &Resolver{
		fsys: fsys,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Docs ship with the application, raw HTML is trusted.
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		baseTitle: DefaultBaseTitle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// BaseTitle returns the title used for the index page.
func (r *Resolver) BaseTitle() string {
	return r.baseTitle
}

// Resolve finds the document for id and renders it. When index is true the
// title is the base title and no heading is extracted.
func (r *Resolver) Resolve(id string, index bool) (*Record, error) {
	slug := Slug(id)
	meta, body, err := r.read(slug)
	if err != nil {
		return nil, err
	}

	title := r.baseTitle
	if !index {
		if h := ExtractTitle(firstLine(body)); h != "" {
			title += " | " + h
		}
	}

	doc := r.md.Parser().Parse(text.NewReader(body))
	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, body, doc); err != nil {
		return nil, fmt.Errorf("render doc %s: %w", slug, err)
	}

	return &Record{
		Slug:        slug,
		Title:       title,
		Description: meta.Description,
		ContentHTML: buf.String(),
		Outline:     outline(doc, body),
	}, nil
}

// Markdown returns the markdown body of the document for id, without any
// front matter.
func (r *Resolver) Markdown(id string) ([]byte, error) {
	_, body, err := r.read(Slug(id))
	return body, err
}

func (r *Resolver) read(slug string) (frontMatter, []byte, error) {
	if slug == "" {
		return frontMatter{}, nil, ErrNotFound
	}
	src, err := fs.ReadFile(r.fsys, slug+ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return frontMatter{}, nil, ErrNotFound
		}
		return frontMatter{}, nil, fmt.Errorf("read doc %s: %w", slug, err)
	}
	meta, body := splitFrontMatter(src)
	return meta, body, nil
}

// List returns the slugs of all documents, sorted.
func (r *Resolver) List() ([]string, error) {
	matches, err := fs.Glob(r.fsys, "*"+ext)
	if err != nil {
		return nil, fmt.Errorf("list docs: %w", err)
	}
	slugs := make([]string, 0, len(matches))
	for _, m := range matches {
		slugs = append(slugs, strings.TrimSuffix(path.Base(m), ext))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// ExtractTitle returns the text of a "# Heading" line, cut before any "[".
// It returns "" when line is not a level-one heading.
func ExtractTitle(line string) string {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func firstLine(src []byte) string {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if i := bytes.IndexByte(src, '\n'); i >= 0 {
		src = src[:i]
	}
	return string(bytes.TrimSuffix(src, []byte("\r")))
}

type frontMatter struct {
	Description string `yaml:"description"`
}

// splitFrontMatter strips a leading YAML front matter block. Files without
// one, or with one that does not parse, are returned untouched.
func splitFrontMatter(src []byte) (frontMatter, []byte) {
	var meta frontMatter
	if !bytes.HasPrefix(src, []byte("---")) {
		return meta, src
	}
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return frontMatter{}, src
	}
	return meta, bytes.TrimLeft(body, "\r\n")
}
