package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/runner/rm"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id|name>",
		Short: "Remove a list from the catalog.",
		Example: `
picklist rm 9f86d081
picklist rm groceries
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			r := rm.Remove{
				Service: s.service(),
				ID:      args[0],
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
