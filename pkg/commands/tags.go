package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/commands/options"
	"tableflip.dev/picklist/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	so := &options.SortOptions{}

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show every tag with its usage count and color.",
		Example: `
picklist tags
picklist tags --sort count:desc --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			t := tags.Tags{
				Source: s.catalog,
				Config: s.app,
				JSON:   oo.JSON,
			}
			if so.Sort.IsSet {
				t.Sort = &so.Sort.Order
			}
			err = t.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSortArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
