// Package decorate post-processes rendered documentation HTML: permalink
// anchors on section headings, new-tab targets on external links and the
// "#git" source-link shorthand.
package decorate

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	nonWord    = regexp.MustCompile(`[^A-Za-z0-9_]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// GitMarker is the link text that turns a link into a source-code link.
const GitMarker = "#git"

// AnchorName turns heading text into an anchor name, e.g. "Web Servers" ->
// "web-servers". It is stable: AnchorName(AnchorName(s)) == AnchorName(s).
func AnchorName(s string) string {
	s = nonWord.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Decorate rewrites an HTML fragment. host is the site host (port optional);
// links pointing elsewhere open in a new tab.
func Decorate(fragment, host string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", fmt.Errorf("parse fragment: %w", err)
	}

	site := hostname(host)
	var buf strings.Builder
	for _, n := range nodes {
		switch n.DataAtom {
		case atom.H2, atom.H3, atom.H4:
			addAnchor(n)
		}
		walkLinks(n, site)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render fragment: %w", err)
		}
	}
	return buf.String(), nil
}

func addAnchor(h *html.Node) {
	name := AnchorName(textContent(h))
	if name == "" {
		return
	}
	a := &html.Node{
		Type:     html.ElementNode,
		Data:     "a",
		DataAtom: atom.A,
		Attr: []html.Attribute{
			{Key: "name", Val: name},
			{Key: "href", Val: "#" + name},
			{Key: "class", Val: "anchor"},
		},
	}
	a.AppendChild(&html.Node{Type: html.TextNode, Data: "¶"})
	h.AppendChild(a)
}

func walkLinks(n *html.Node, site string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		if href, ok := attr(n, "href"); ok {
			if isExternal(href, site) {
				setAttr(n, "target", "_blank")
			}
			if strings.TrimSpace(textContent(n)) == GitMarker {
				gitLink(n)
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkLinks(c, site)
	}
}

// gitLink replaces the link body with "[<s>GitHub</s>]".
func gitLink(a *html.Node) {
	for c := a.FirstChild; c != nil; c = a.FirstChild {
		a.RemoveChild(c)
	}
	s := &html.Node{Type: html.ElementNode, Data: "s", DataAtom: atom.S}
	s.AppendChild(&html.Node{Type: html.TextNode, Data: "GitHub"})

	a.AppendChild(&html.Node{Type: html.TextNode, Data: "["})
	a.AppendChild(s)
	a.AppendChild(&html.Node{Type: html.TextNode, Data: "]"})

	setAttr(a, "title", "Source Code on GitHub")
	setAttr(a, "class", "git")
}

func isExternal(href, site string) bool {
	u, err := url.Parse(href)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return !strings.EqualFold(u.Hostname(), site)
}

func hostname(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}
