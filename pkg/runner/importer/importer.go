// Package importer loads list records from a JSON or YAML file into the
// catalog.
package importer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/store"
)

// Import reads Path ("-" for stdin) and stores every record in it.
type Import struct {
	Service *app.Service
	Path    string
	Format  store.Format

	In  io.Reader
	Out io.Writer
}

// Do decodes and stores the records.
func (i *Import) Do(ctx context.Context) error {
	var r io.Reader
	switch {
	case i.Path == "-" || i.Path == "":
		r = i.In
		if r == nil {
			r = os.Stdin
		}
	default:
		f, err := os.Open(i.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	format := i.Format
	if format == store.FormatAuto {
		format = store.FormatFromPath(i.Path)
	}
	records, err := store.Decode(r, format)
	if err != nil {
		return err
	}
	stored, err := i.Service.Import(ctx, records)
	if err != nil {
		return err
	}

	out := i.Out
	if out == nil {
		out = color.Output
	}
	faint := color.New(color.Faint)
	for _, rec := range stored {
		_, _ = faint.Fprintf(out, "%s  ", rec.ID)
		_, _ = fmt.Fprintln(out, rec.Name)
	}
	_, _ = fmt.Fprintf(out, "imported %d lists\n", len(stored))
	return nil
}
