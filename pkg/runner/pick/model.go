// Package pick is the interactive list chooser.
package pick

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/colorhash"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/printers"
	"tableflip.dev/picklist/pkg/sorted"
	"tableflip.dev/picklist/pkg/store"
	"tableflip.dev/picklist/pkg/tags"
	"tableflip.dev/picklist/pkg/timeutil"
)

type mode int

const (
	modeNormal mode = iota
	modeFind
)

// sortCycle is the order the s key walks through.
var sortCycle = []sorted.SortOrder{
	lists.DefaultSortOrder,
	sorted.By("name"),
	sorted.By("size").Reverse(),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
)

// Model is the bubbletea model over one chooser session.
type Model struct {
	ctx     context.Context
	chooser *app.Chooser
	events  <-chan store.Event

	mode   mode
	input  textinput.Model
	page   int
	pages  int
	total  int
	rows   []lists.Snapshot
	cursor int
	status string
	done   bool

	width int
	now   func() time.Time
}

// New creates a model over chooser. When events is not nil the model
// refreshes whenever the source reports a change.
func New(ctx context.Context, chooser *app.Chooser, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "list name"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		ctx:     ctx,
		chooser: chooser,
		events:  events,
		mode:    modeNormal,
		input:   ti,
		page:    1,
		width:   80,
		now:     time.Now,
		status:  "←/→ page, ↑/↓ move, space select, / find, t tags, 1-9 tag, s sort, enter choose, q quit",
	}
	m.reload()
	return m
}

// storeEventMsg carries a change reported by the source.
type storeEventMsg struct{ event store.Event }

// Init starts watching the source.
func (m Model) Init() tea.Cmd {
	return m.watch()
}

func (m Model) watch() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case storeEventMsg:
		added, err := m.chooser.Refresh(m.ctx)
		if err != nil {
			m.status = "ERR: " + err.Error()
		} else if added > 0 {
			m.status = fmt.Sprintf("%d new", added)
		}
		m.reload()
		return m, m.watch()
	case tea.KeyPressMsg:
		if m.mode == modeFind {
			return m.updateFind(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		if m.page > 1 {
			m.page--
			m.cursor = 0
			m.reload()
		}
	case "right", "l":
		if m.page < m.pages {
			m.page++
			m.cursor = 0
			m.reload()
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case " ", "space":
		if row, ok := m.current(); ok {
			m.chooser.Lists().Select("id", row.ID, true)
			m.reload()
		}
	case "t":
		index := m.chooser.Tags()
		index.SetAllActive(!index.AllSatisfy(tags.PropertyActive, true))
		m.reload()
	case "s":
		m.cycleSort()
	case "/":
		m.mode = modeFind
		m.input.Reset()
		return m, m.input.Focus()
	case "enter":
		if err := m.chooser.Submit(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
			m.toggleTag(n - 1)
		}
	}
	return m, nil
}

func (m Model) updateFind(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name != "" {
			pending := len(m.chooser.Lists().Pending())
			m.chooser.Select(name, true)
			switch sel, ok := m.chooser.Lists().Selected(); {
			case len(m.chooser.Lists().Pending()) > pending:
				m.status = fmt.Sprintf("%q will be selected when it arrives", name)
			case ok && sel.Name() == name:
				m.status = "selected " + name
			default:
				m.status = "deselected " + name
			}
		}
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		m.reload()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) toggleTag(n int) {
	all, err := m.chooser.Tags().Sorted()
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	if n >= len(all) {
		return
	}
	if err := m.chooser.Tags().Toggle(all[n].Name); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.reload()
}

func (m *Model) cycleSort() {
	current := m.chooser.Lists().SortOrder()
	next := sortCycle[0]
	for i, order := range sortCycle {
		if order == current {
			next = sortCycle[(i+1)%len(sortCycle)]
			break
		}
	}
	if err := m.chooser.Lists().SetSortOrder(next); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.page = 1
	m.cursor = 0
	m.status = "sorted by " + next.String()
	m.reload()
}

// reload fetches the current page, stepping back when filtering left it
// past the end.
func (m *Model) reload() {
	rows, err := m.chooser.Page(m.page)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	pager := m.chooser.Lists().Paginator()
	if pages := pager.Pages(); m.page > pages {
		m.page = pages
		if rows, err = m.chooser.Page(m.page); err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
	}
	m.rows = rows
	m.pages = pager.Pages()
	m.total = pager.Total()
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
}

func (m Model) current() (lists.Snapshot, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return lists.Snapshot{}, false
	}
	return m.rows[m.cursor], true
}

// Done reports whether a list was submitted.
func (m Model) Done() bool { return m.done }

// View renders the page, the tag bar and the status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Lists (%d)", m.total)))
	b.WriteString("\n\n")
	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  no lists"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("› ")
		}
		marker := "○"
		if row.Selected {
			marker = "●"
		}
		line := fmt.Sprintf("%s %s", marker, row.Name)
		if row.Size > 0 {
			line += dimStyle.Render(fmt.Sprintf(" (%d)", row.Size))
		}
		if !row.Timestamp.IsZero() {
			line += dimStyle.Render(" " + timeutil.Age(m.now(), row.Timestamp.Time))
		}
		for _, t := range row.Tags {
			line += " " + tagLabel(t, t.Name)
		}
		b.WriteString(pointer + truncate.StringWithTail(line, uint(max(10, m.width-2)), "…"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("page %d of %d, sorted by %s", m.page, m.pages, m.chooser.Lists().SortOrder())))
	b.WriteString("\n")
	if bar := m.tagBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}
	if m.mode == modeFind {
		b.WriteString("\n/" + m.input.View() + "\n")
	}
	b.WriteString("\n" + dimStyle.Render(m.status))
	return b.String()
}

func (m Model) tagBar() string {
	all, err := m.chooser.Tags().JSON()
	if err != nil || len(all) == 0 {
		return ""
	}
	parts := make([]string, 0, len(all))
	for i, t := range all {
		label := fmt.Sprintf("%s:%d", t.Name, t.Count)
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		parts = append(parts, tagLabel(t, label))
	}
	return strings.Join(parts, " ")
}

func tagLabel(t tags.JSON, text string) string {
	if !t.Active {
		return offStyle.Render(text)
	}
	var rgb colorhash.RGB
	for i := 0; i < len(rgb) && i < len(t.RGB); i++ {
		rgb[i] = uint8(t.RGB[i])
	}
	return printers.Swatch(rgb, text)
}
