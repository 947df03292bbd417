package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/commands/options"
	"tableflip.dev/picklist/pkg/runner/ls"
	"tableflip.dev/picklist/pkg/store"
)

func addLs(topLevel *cobra.Command) {
	po := &options.PageOptions{}
	so := &options.SortOptions{}
	wo := &options.SinceOptions{}
	to := &options.TagOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Show one page of lists.",
		Long: `Show one page of lists, newest first unless --sort says otherwise.

Lists whose tags are all hidden are left out. A list without tags is always shown.`,
		Example: `
picklist ls
picklist ls --page 2 --per-page 20
picklist ls --sort name --hide archive
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := wo.Window()
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			cfg := s.app
			if po.PerPage > 0 {
				cfg.PerPage = po.PerPage
			}
			if so.Sort.IsSet {
				cfg.Sort = so.Sort.Order
			}
			l := ls.Ls{
				Source:   store.Recent(s.catalog, window, nil),
				Config:   cfg,
				Page:     po.Page,
				Hide:     to.Hide,
				Untagged: to.None,
				JSON:     oo.JSON,
			}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddPageArgs(cmd, po)
	options.AddSortArgs(cmd, so)
	options.AddSinceArgs(cmd, wo)
	options.AddTagArgs(cmd, to)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
