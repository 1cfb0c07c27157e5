// Package web bundles the site's templates, static assets and markdown
// documentation so the binary can run without a checkout.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:templates asset all:docs
var FS embed.FS

// Templates holds the view templates ("_layout.html", "home.html", ...).
func Templates() fs.FS { return mustSub("templates") }

// Assets holds the files served under /asset/.
func Assets() fs.FS { return mustSub("asset") }

// Docs holds the "<slug>.md" documentation files.
func Docs() fs.FS { return mustSub("docs") }

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(FS, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
