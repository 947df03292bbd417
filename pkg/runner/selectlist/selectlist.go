// Package selectlist selects a list by name and reports it as the choice.
package selectlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/printers"
	"tableflip.dev/picklist/pkg/store"
)

// ErrNoMatch is returned when no list carries the requested name.
var ErrNoMatch = errors.New("select: no list with that name")

// Prompter picks a name out of names.
type Prompter func(names []string) (string, error)

// Select toggles the named list and submits it.
type Select struct {
	Source store.Source
	Config app.Config

	Name  string
	Force bool
	// Prompt, when set, is asked for the name instead of Name.
	Prompt Prompter

	JSON    bool
	Printer *printers.PrettyPrint
	Out     io.Writer
}

// Do loads the lists, selects and submits the chosen one.
func (s *Select) Do(ctx context.Context) error {
	var chosen *lists.Snapshot
	var cbErr error
	chooser, err := app.Open(ctx, s.Config, s.Source, func(err error, _ bool, list *lists.Snapshot) {
		if err != nil {
			cbErr = err
		}
		if list != nil {
			chosen = list
		}
	})
	if err != nil {
		return err
	}
	defer chooser.Close()

	name := s.Name
	if s.Prompt != nil {
		active, err := chooser.Lists().Active()
		if err != nil {
			return err
		}
		names := make([]string, 0, len(active))
		for _, item := range active {
			names = append(names, item.Name())
		}
		if name, err = s.Prompt(names); err != nil {
			return err
		}
	}

	item, ok := findName(chooser.Lists(), name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoMatch, name)
	}
	// A provided selection may already have selected name; selecting it
	// again would toggle it off.
	if !item.Selected() {
		chooser.Lists().Select("id", item.ID(), s.Force)
	}
	chooser.Lists().Submit(item)
	if cbErr != nil {
		return cbErr
	}
	if chosen == nil {
		return app.ErrNothingSelected
	}

	out := s.Out
	if out == nil {
		out = color.Output
	}
	if s.JSON {
		return json.NewEncoder(out).Encode(chosen)
	}
	pp := s.Printer
	if pp == nil {
		pp = printers.NewPrettyPrint()
	}
	pp.Title("Selected")
	pp.Page([]lists.Snapshot{*chosen}, 1, 1)
	return nil
}

func findName(c *lists.Collection, name string) (*lists.Item, bool) {
	for _, item := range c.Items() {
		if item.Name() == name {
			return item, true
		}
	}
	return nil, false
}

// PromptUI asks for a name with an arrow-key menu.
func PromptUI(names []string) (string, error) {
	if len(names) == 0 {
		return "", errors.New("select: no lists to choose from")
	}
	templates := &promptui.SelectTemplates{
		Label:    "{{ . | bold }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "{{ . | green }}",
	}
	prompt := promptui.Select{
		Label:     "Choose a list",
		Items:     names,
		Templates: templates,
		Size:      10,
	}
	_, result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("select: prompt: %w", err)
	}
	return result, nil
}
