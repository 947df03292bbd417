package options

import (
	"github.com/spf13/cobra"
)

// SelectOptions
type SelectOptions struct {
	Force       bool
	Interactive bool
}

func AddSelectArgs(cmd *cobra.Command, o *SelectOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", true,
		"Clear any other selection first.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Choose the list from a prompt.`)
}
