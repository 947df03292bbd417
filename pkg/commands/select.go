package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/commands/options"
	"tableflip.dev/picklist/pkg/runner/selectlist"
)

func addSelect(topLevel *cobra.Command) {
	so := &options.SelectOptions{}

	cmd := &cobra.Command{
		Use:   "select <name>",
		Short: "Select a list by name and report it as the choice.",
		Example: `
picklist select groceries
picklist select -i
picklist select "weekend chores" --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if so.Interactive {
				return nil
			}
			if len(args) < 1 {
				return errors.New("a list name is required")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return listCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			c := selectlist.Select{
				Source: s.catalog,
				Config: s.app,
				Name:   strings.Join(args, " "),
				Force:  so.Force,
				JSON:   oo.JSON,
			}
			if so.Interactive {
				c.Prompt = selectlist.PromptUI
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSelectArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
