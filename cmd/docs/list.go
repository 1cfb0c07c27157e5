package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsite/internal/docs"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents with their URL paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.resolver()
			if err != nil {
				return err
			}
			slugs, err := r.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, slug := range slugs {
				fmt.Fprintf(out, "%-28s %s\n", slug, urlPath(slug))
			}
			return nil
		},
	}
}

// urlPath is the public path of a slug; "-" in URLs maps back to "_".
func urlPath(slug string) string {
	if slug == docs.IndexSlug {
		return "/docs"
	}
	return "/docs/" + strings.ReplaceAll(slug, "_", "-")
}
