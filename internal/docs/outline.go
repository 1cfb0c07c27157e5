package docs

import (
	"github.com/yuin/goldmark/ast"

	"github.com/dgallion1/docsite/internal/decorate"
)

// Heading is one entry of a page outline. Anchor matches the name the
// decorator gives the heading in the rendered page.
type Heading struct {
	Level  int
	Text   string
	Anchor string
}

// outline collects the h2-h4 headings at the top level of doc.
func outline(doc ast.Node, src []byte) []Heading {
	var out []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level < 2 || h.Level > 4 {
			continue
		}
		t := string(h.Text(src))
		if t == "" {
			continue
		}
		out = append(out, Heading{
			Level:  h.Level,
			Text:   t,
			Anchor: decorate.AnchorName(t),
		})
	}
	return out
}
