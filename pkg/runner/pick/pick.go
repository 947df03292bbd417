package pick

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/printers"
	"tableflip.dev/picklist/pkg/store"
)

// Pick runs the interactive chooser and prints the submitted list.
type Pick struct {
	Source store.Source
	Config app.Config
	// Watch refreshes the chooser when the source changes.
	Watch bool

	JSON    bool
	Printer *printers.PrettyPrint
	Out     io.Writer
}

// Do loads the lists and runs the chooser until a list is submitted or the
// user quits.
func (p *Pick) Do(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var chosen *lists.Snapshot
	chooser, err := app.Open(ctx, p.Config, p.Source, func(err error, _ bool, list *lists.Snapshot) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "picklist: %v\n", err)
		}
		if list != nil {
			chosen = list
		}
	})
	if err != nil {
		return err
	}
	defer chooser.Close()

	var events <-chan store.Event
	if p.Watch {
		if events, err = chooser.Watch(ctx); err != nil {
			return err
		}
	}

	program := tea.NewProgram(New(ctx, chooser, events), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	if chosen == nil {
		return nil
	}
	return p.print(*chosen)
}

func (p *Pick) print(snap lists.Snapshot) error {
	out := p.Out
	if out == nil {
		out = color.Output
	}
	if p.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	pp := p.Printer
	if pp == nil {
		pp = printers.NewPrettyPrint()
	}
	pp.Out = out
	pp.Title("Chosen")
	pp.Page([]lists.Snapshot{snap}, 1, 1)
	return nil
}
