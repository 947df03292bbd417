package options

import (
	"github.com/spf13/cobra"
)

// VerboseOptions
type VerboseOptions struct {
	Verbose bool
}

func AddVerboseArg(cmd *cobra.Command, o *VerboseOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log every selection and tag event to stderr.")
}
