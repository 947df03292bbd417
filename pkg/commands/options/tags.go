package options

import (
	"github.com/spf13/cobra"
)

// TagOptions
type TagOptions struct {
	Hide []string
	None bool
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions) {
	cmd.Flags().StringSliceVar(&o.Hide, "hide", nil,
		"Hide lists carrying only these tags. Repeatable.")
	cmd.Flags().BoolVar(&o.None, "untagged", false,
		"Only show lists without tags.")
}
