// Package options defines shared flag helpers for CLI commands.
package options

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
)

func AddOutputArg(cmd *cobra.Command, po *base.OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}
