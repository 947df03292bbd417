package options

import (
	"github.com/spf13/cobra"
)

// ImportOptions
type ImportOptions struct {
	Format string
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions) {
	cmd.Flags().StringVar(&o.Format, "format", "",
		`Input format, one of "json" or "yaml". Guessed from the file when unset.`)
}
