package options

import (
	"github.com/spf13/cobra"
)

// PageOptions
type PageOptions struct {
	Page    int
	PerPage int
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to show, starting at 1.")
	cmd.Flags().IntVar(&o.PerPage, "per-page", 0,
		"Lists per page. Defaults to the configured per_page.")
}
