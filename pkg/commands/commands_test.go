package commands

import "testing"

func TestSubcommands(t *testing.T) {
	root := New()
	for _, name := range []string{"ls", "tags", "select", "pick", "import", "rm", "info", "mcp", "version", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Fatalf("expected subcommand %q, got %v", name, err)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Fatalf("expected a persistent --verbose flag")
	}
	ls, _, _ := root.Find([]string{"ls"})
	for _, flag := range []string{"page", "per-page", "sort", "since", "hide", "untagged", "json"} {
		if ls.Flags().Lookup(flag) == nil {
			t.Fatalf("ls is missing --%s", flag)
		}
	}
}
