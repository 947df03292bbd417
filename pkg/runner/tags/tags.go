// Package tags renders the tag index.
package tags

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/printers"
	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/store"
)

// Tags prints every tag with its usage count and color.
type Tags struct {
	Source store.Source
	Config app.Config
	// Sort overrides the index order, least used first by default.
	Sort *sorted.SortOrder

	JSON    bool
	Printer *printers.PrettyPrint
	Out     io.Writer
}

// Do loads the lists and renders their tags.
func (t *Tags) Do(ctx context.Context) error {
	chooser, err := app.Open(ctx, t.Config, t.Source, nil)
	if err != nil {
		return err
	}
	defer chooser.Close()

	index := chooser.Tags()
	if t.Sort != nil {
		if err := index.SetSortOrder(*t.Sort); err != nil {
			return err
		}
	}
	all, err := index.JSON()
	if err != nil {
		return err
	}

	if t.JSON {
		out := t.Out
		if out == nil {
			out = color.Output
		}
		return json.NewEncoder(out).Encode(all)
	}
	pp := t.Printer
	if pp == nil {
		pp = printers.NewPrettyPrint()
	}
	pp.Title("Tags")
	pp.Tags(all)
	return nil
}
