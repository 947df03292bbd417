package commands

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(picklist completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(picklist completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func listCompletions(toComplete string) []string {
	s, err := load()
	if err != nil {
		return nil
	}
	records, err := s.catalog.Lists(context.Background())
	if err != nil {
		return nil
	}
	var names []string
	for _, rec := range records {
		if strings.HasPrefix(rec.Name, toComplete) {
			names = append(names, strconv.Quote(rec.Name))
		}
	}
	return names
}
