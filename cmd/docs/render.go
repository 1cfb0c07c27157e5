package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/docs"
)

type renderOptions struct {
	format string
	style  string
	width  int
	index  bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <id>",
		Short: "Render a document as HTML, terminal text or just its title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := root.resolver()
			if err != nil {
				return err
			}
			return runRender(cmd, r, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "term", "output format: term, html or title")
	cmd.Flags().StringVar(&opts.style, "style", "", "glamour style for term output (default: auto)")
	cmd.Flags().IntVar(&opts.width, "width", 80, "word wrap width for term output")
	cmd.Flags().BoolVar(&opts.index, "index", false, "render as the docs index page")
	return cmd
}

func runRender(cmd *cobra.Command, r *docs.Resolver, id string, opts *renderOptions) error {
	out := cmd.OutOrStdout()

	switch opts.format {
	case "html", "title":
		rec, err := r.Resolve(id, opts.index)
		if err != nil {
			return notFound(id, err)
		}
		if opts.format == "title" {
			fmt.Fprintln(out, rec.Title)
			return nil
		}
		fmt.Fprint(out, rec.ContentHTML)
		return nil

	case "term":
		body, err := r.Markdown(id)
		if err != nil {
			return notFound(id, err)
		}
		styleOpt := glamour.WithAutoStyle()
		if opts.style != "" {
			styleOpt = glamour.WithStylePath(opts.style)
		}
		tr, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(opts.width))
		if err != nil {
			return fmt.Errorf("terminal renderer: %w", err)
		}
		s, err := tr.Render(string(body))
		if err != nil {
			return fmt.Errorf("render %s: %w", id, err)
		}
		fmt.Fprint(out, s)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want term, html or title)", opts.format)
	}
}

func notFound(id string, err error) error {
	if errors.Is(err, docs.ErrNotFound) {
		return fmt.Errorf("no document for %q (slug %q)", id, docs.Slug(id))
	}
	return err
}
