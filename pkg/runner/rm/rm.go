// Package rm removes a list from the catalog.
package rm

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
)

// Remove deletes the list with ID, or named ID.
type Remove struct {
	Service *app.Service
	ID      string

	Out io.Writer
}

// Do removes the list.
func (r *Remove) Do(ctx context.Context) error {
	rec, err := r.Service.Remove(ctx, r.ID)
	if err != nil {
		return err
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "removed %s (%s)\n", rec.Name, rec.ID)
	return nil
}
