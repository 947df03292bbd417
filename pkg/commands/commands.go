package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/picklist/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	vo = &options.VerboseOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "picklist",
		Short: base.Wrap80("Browse, filter and pick one of your lists."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddVerboseArg(cmd, vo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLs(topLevel)
	addTags(topLevel)
	addSelect(topLevel)
	addPick(topLevel)
	addImport(topLevel)
	addRm(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
