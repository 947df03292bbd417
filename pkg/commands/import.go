package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/picklist/pkg/commands/options"
	"tableflip.dev/picklist/pkg/runner/importer"
	"tableflip.dev/picklist/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	io := &options.ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import lists from a JSON or YAML file.",
		Long: base.Wrap80(`Import lists from a JSON or YAML file, or from stdin when the file is "-".
The file holds one list or an array of lists. Lists without an id are given one.`),
		Example: `
picklist import lists.yaml
cat lists.json | picklist import - --format json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := store.ParseFormat(io.Format)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := load()
			if err != nil {
				return oo.HandleError(err)
			}
			i := importer.Import{
				Service: s.service(),
				Path:    args[0],
				Format:  format,
				In:      cmd.InOrStdin(),
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddImportArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
