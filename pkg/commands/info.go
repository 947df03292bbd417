package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the catalog and where it is stored.",
		Example: `
picklist info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			i := info.Info{
				Config: s.config,
				Source: s.catalog,
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
