package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"tableflip.dev/picklist/pkg/colorhash"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/tags"
)

const (
	selectedMarker   = "●"
	unselectedMarker = "○"
	timeLayout       = "2006-01-02 15:04"
)

type PrettyPrint struct {
	ShowID bool
	// DescriptionWidth truncates descriptions; zero hides them.
	DescriptionWidth int
	// Swatches paints tags with their colors.
	Swatches bool

	Out io.Writer
}

// NewPrettyPrint writes to color.Output, painting tags when stdout is a
// terminal and NO_COLOR is unset.
func NewPrettyPrint() *PrettyPrint {
	return &PrettyPrint{
		DescriptionWidth: 40,
		Swatches:         !termenv.EnvNoColor() && isatty.IsTerminal(os.Stdout.Fd()),
		Out:              color.Output,
	}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " list")
	default:
		_, _ = c.Fprintln(pp.out(), " lists")
	}
}

// Page renders one page of lists followed by a page footer.
func (pp *PrettyPrint) Page(snaps []lists.Snapshot, page, pages int) {
	if len(snaps) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{"", bold.Sprint("Name"), bold.Sprint("Size"), bold.Sprint("Updated"), bold.Sprint("Tags")}
	if pp.ShowID {
		header = append([]interface{}{bold.Sprint("ID")}, header...)
	}
	if pp.DescriptionWidth > 0 {
		header = append(header, bold.Sprint("Description"))
	}
	tbl.AddRow(header...)

	for _, s := range snaps {
		marker := unselectedMarker
		if s.Selected {
			marker = color.New(color.FgGreen).Sprint(selectedMarker)
		}
		row := []interface{}{marker, s.Name, s.Size, updated(s.Timestamp), pp.tagList(s.Tags)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(s.ID)}, row...)
		}
		if pp.DescriptionWidth > 0 {
			row = append(row, truncate.StringWithTail(s.Description, uint(pp.DescriptionWidth), "…"))
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "page %d of %d\n", page, pages)
}

// Tags renders the tag index.
func (pp *PrettyPrint) Tags(all []tags.JSON) {
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Count"), bold.Sprint("Tag"), bold.Sprint("Color"), bold.Sprint("Active"))
	for _, t := range all {
		rgb := rgbOf(t)
		active := "yes"
		name := pp.swatch(rgb, t.Name)
		if !t.Active {
			active = faint.Sprint("no")
		}
		tbl.AddRow(t.Count, name, rgb.Hex(), active)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) tagList(all []tags.JSON) string {
	names := make([]string, 0, len(all))
	for _, t := range all {
		if !t.Active {
			names = append(names, color.New(color.Faint, color.CrossedOut).Sprint(t.Name))
			continue
		}
		names = append(names, pp.swatch(rgbOf(t), t.Name))
	}
	return strings.Join(names, " ")
}

func (pp *PrettyPrint) swatch(rgb colorhash.RGB, text string) string {
	if !pp.Swatches {
		return text
	}
	return Swatch(rgb, text)
}

// Swatch paints text on the tag color with a readable foreground.
func Swatch(rgb colorhash.RGB, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(rgb.Foreground().Hex())).
		Padding(0, 1).
		Render(text)
}

func rgbOf(t tags.JSON) colorhash.RGB {
	var rgb colorhash.RGB
	for i := 0; i < len(rgb) && i < len(t.RGB); i++ {
		rgb[i] = uint8(t.RGB[i])
	}
	return rgb
}

func updated(ts lists.Timestamp) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(timeLayout)
}
