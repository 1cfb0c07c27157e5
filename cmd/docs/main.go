// Command docs inspects the documentation bundle from the terminal: list the
// available pages and render one as HTML or styled terminal text.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	dir   string
	title string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "docs",
		Short:        "Inspect the site documentation",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", os.Getenv("DOCS_DIR"), "documents directory (default: bundled docs)")
	cmd.PersistentFlags().StringVar(&opts.title, "title", docs.DefaultBaseTitle, "base page title")

	cmd.AddCommand(newListCmd(opts), newRenderCmd(opts))
	return cmd
}

func (o *rootOptions) resolver() (*docs.Resolver, error) {
	var fsys fs.FS = web.Docs()
	if o.dir != "" {
		fi, err := os.Stat(o.dir)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", o.dir)
		}
		fsys = os.DirFS(o.dir)
	}
	return docs.NewResolver(fsys, docs.WithBaseTitle(o.title)), nil
}
