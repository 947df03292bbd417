package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/commands/options"
	"tableflip.dev/picklist/pkg/runner/pick"
	"tableflip.dev/picklist/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PageOptions{}
	so := &options.SortOptions{}
	wo := &options.SinceOptions{}
	watch := true

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a list interactively.",
		Long: `Choose a list interactively.

Keys: ←/→ or h/l change page, ↑/↓ or j/k move, space selects, / selects by
name, t toggles every tag, 1-9 toggle a single tag, s changes the sort,
enter chooses the selected list and q quits.`,
		Example: `
picklist pick
picklist pick --sort name --json
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
			p := pick.Pick{
				Source: store.Recent(s.catalog, window, nil),
				Config: cfg,
				Watch:  watch,
				JSON:   oo.JSON,
			}
			err = p.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&po.PerPage, "per-page", 0,
		"Lists per page. Defaults to the configured per_page.")
	cmd.Flags().BoolVar(&watch, "watch", true,
		"Pick up lists written to the catalog while choosing.")
	options.AddSortArgs(cmd, so)
	options.AddSinceArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
