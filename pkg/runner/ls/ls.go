// Package ls renders one page of lists.
package ls

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/printers"
	"tableflip.dev/picklist/pkg/store"
	"tableflip.dev/picklist/pkg/tags"
)

// Ls prints the lists on one page.
type Ls struct {
	Source store.Source
	Config app.Config

	Page     int
	Hide     []string
	Untagged bool

	JSON    bool
	Printer *printers.PrettyPrint
	Out     io.Writer
}

// Result is the JSON shape of one page.
type Result struct {
	Page    int              `json:"page"`
	Pages   int              `json:"pages"`
	PerPage int              `json:"per_page"`
	Total   int              `json:"total"`
	Lists   []lists.Snapshot `json:"lists"`
}

// Do loads the lists and renders the requested page.
func (l *Ls) Do(ctx context.Context) error {
	chooser, err := app.Open(ctx, l.Config, l.Source, nil)
	if err != nil {
		return err
	}
	defer chooser.Close()

	if l.Untagged {
		chooser.Tags().SetAllActive(false)
	}
	for _, name := range l.Hide {
		if err := chooser.Tags().SetActive(name, false); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
	}

	page := l.Page
	if page < 1 {
		page = 1
	}
	snaps, err := chooser.Page(page)
	if err != nil {
		return err
	}
	pager := chooser.Lists().Paginator()
	res := Result{
		Page:    page,
		Pages:   pager.Pages(),
		PerPage: pager.PageSize(),
		Total:   pager.Total(),
		Lists:   snaps,
	}

	if l.JSON {
		return json.NewEncoder(l.out()).Encode(res)
	}
	pp := l.Printer
	if pp == nil {
		pp = printers.NewPrettyPrint()
	}
	pp.TitleWithCount("Lists", res.Total)
	pp.Page(res.Lists, res.Page, res.Pages)
	if !chooser.Tags().AllSatisfy(tags.PropertyActive, true) {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(l.out(), "some tags are hidden")
	}
	return nil
}

func (l *Ls) out() io.Writer {
	if l.Out == nil {
		return color.Output
	}
	return l.Out
}
