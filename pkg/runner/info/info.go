// Package info reports where the catalog lives and what it holds.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/store"
)

type Info struct {
	Config store.Config
	Source store.Source

	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("PICKLIST_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "PICKLIST_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "PICKLIST_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	fmt.Fprintln(out, "Config.per_page: ", n.Config.PerPage())
	fmt.Fprintln(out, "Config.sort: ", n.Config.SortOrder())
	fmt.Fprintln(out, "Config.locale: ", n.Config.Locale())

	if n.Source == nil {
		return fmt.Errorf("failed to create catalog")
	}

	cfg, err := app.ConfigFrom(n.Config)
	if err != nil {
		return err
	}
	chooser, err := app.Open(ctx, cfg, n.Source, nil)
	if err != nil {
		return err
	}
	defer chooser.Close()

	fmt.Fprintf(out, "Lists: %d\n", chooser.Lists().Len())
	fmt.Fprintf(out, "Tags:  %d\n", chooser.Tags().Len())
	if item, ok := chooser.Lists().Selected(); ok {
		fmt.Fprintf(out, "Selected: %s\n", item.Name())
	} else if sel := n.Config.Selected(); sel != "" {
		fmt.Fprintf(out, "Selected: %s (not found)\n", sel)
	}
	return nil
}
